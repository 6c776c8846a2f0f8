// Package knowlix builds a local knowledge base of a Go repository's public
// API. It parses `go doc` documentation text into structured function and
// type records, renders them as independent text chunks for embedding, and
// can generate Markdown documentation for each API item with an LLM.
//
// This package contains domain types, interfaces, and the pure parsing core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/, gotool/).
package knowlix
