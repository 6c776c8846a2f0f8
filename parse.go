package knowlix

import (
	"fmt"
	"regexp"
	"strings"
)

// The documentation text produced by `go doc -all` is not a formal grammar,
// so each declaration kind is matched by its own pattern behind a named
// predicate/extractor pair. A line is tried as a function declaration
// first, then as a type declaration; anything else is skipped.
var (
	funcLineRe  = regexp.MustCompile(`^func(?:\s+\(([^)]+)\))?\s+([A-Z]\w+)\s*(\([^)]*\))?\s*(.*)$`)
	typeLineRe  = regexp.MustCompile(`^type\s+([A-Z]\w+)\s+(struct|interface)\s*\{?`)
	fieldLineRe = regexp.MustCompile(`^(\w+)\s+(\S+)(?:\s+(.*))?$`)
)

// continuationIndent marks alignment/continuation lines emitted by go doc.
const continuationIndent = "          " // ten spaces

// descriptionPad is the minimum run of spaces separating an aligned inline
// description from the signature. The heuristic is deliberately approximate
// and can misfire on signatures with wide internal padding.
const descriptionPad = "    "

// lineKind tags the classification of one documentation line.
type lineKind int

const (
	lineSkip lineKind = iota
	linePackage
	lineFunction
	lineType
)

// classifyLine decides what a single documentation line begins.
// The classifier never backtracks; callers only move the cursor forward.
func classifyLine(line string) lineKind {
	switch {
	case isPackageDecl(line):
		return linePackage
	case isSkipLine(line):
		return lineSkip
	case isFunctionDecl(line):
		return lineFunction
	case isTypeDecl(line):
		return lineType
	default:
		return lineSkip
	}
}

func isPackageDecl(line string) bool {
	return strings.HasPrefix(line, "package ")
}

func isSkipLine(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, continuationIndent) ||
		line == "CONSTANTS" ||
		line == "VARIABLES"
}

func isFunctionDecl(line string) bool {
	return funcLineRe.MatchString(line)
}

func isTypeDecl(line string) bool {
	return typeLineRe.MatchString(line)
}

// ParseDoc performs a single left-to-right scan of one package's
// documentation text and returns the exported function and type records in
// order of first appearance. Empty input yields empty slices, not an error.
func ParseDoc(doc string) ([]Function, []Type) {
	lines := strings.Split(doc, "\n")
	functions := []Function{}
	types := []Type{}
	currentPackage := ""

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")

		switch classifyLine(line) {
		case linePackage:
			// Last-wins: a later package line overwrites the current one.
			currentPackage = packageName(line)
		case lineFunction:
			if fn, ok := extractFunction(line); ok {
				fn.Package = currentPackage
				functions = append(functions, fn)
			}
		case lineType:
			if typ, next, ok := extractType(line, lines, i); ok {
				typ.Package = currentPackage
				types = append(types, typ)
				i = next - 1
			}
		}
	}

	return functions, types
}

// ParsePackage parses one package's documentation text and assembles it
// with the externally supplied metadata. The scan itself cannot fail; only
// unusable metadata does, with an EUNAVAILABLE code.
func ParsePackage(doc string, meta PackageMeta) (*Package, error) {
	functions, types := ParseDoc(doc)

	pkg := &Package{
		Name:        meta.Name,
		ImportPath:  meta.ImportPath,
		Functions:   functions,
		Types:       types,
		Description: meta.Doc,
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	return pkg, nil
}

// packageName extracts the package name from a package declaration line.
func packageName(line string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "package "))
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// extractFunction decomposes a function or method declaration line into
// receiver, name, parameter list, return clause, and inline description.
// It reports false when the line does not match the declaration grammar,
// including any declaration whose identifier is unexported.
func extractFunction(line string) (Function, bool) {
	m := funcLineRe.FindStringSubmatch(line)
	if m == nil {
		return Function{}, false
	}

	receiver := m[1]
	name := m[2]
	params := m[3]
	returns := strings.TrimSpace(m[4])
	if params == "" {
		params = "()"
	}

	// Aligned documentation columns use wide padding to separate the
	// signature from its comment: the text after the last four-space run
	// is the inline description.
	description := ""
	if strings.Contains(line, descriptionPad) {
		parts := strings.Split(line, descriptionPad)
		description = strings.TrimSpace(parts[len(parts)-1])
	}
	if description != "" && strings.HasSuffix(returns, description) {
		returns = strings.TrimRight(strings.TrimSuffix(returns, description), " ")
	}

	signature := "func"
	if receiver != "" {
		signature += " (" + receiver + ")"
	}
	signature += " " + name + params
	if returns != "" {
		signature += " " + returns
	}

	return Function{
		Name:        name,
		Signature:   signature,
		Description: description,
		Receiver:    receiver,
		Params:      params,
		Returns:     returns,
	}, true
}

// extractType consumes a type declaration line plus the indented body that
// follows it. It returns the populated record and the index of the first
// line not consumed, which is re-classified by the outer scan.
func extractType(line string, lines []string, idx int) (Type, int, bool) {
	m := typeLineRe.FindStringSubmatch(line)
	if m == nil {
		return Type{}, idx, false
	}

	typ := Type{
		Name:    m[1],
		Kind:    m[2],
		Fields:  []string{},
		Methods: []string{},
	}

	// The body has no end marker: any leading whitespace keeps the block
	// open, so trailing blank or comment lines are absorbed harmlessly,
	// while sibling declarations at column zero terminate it.
	i := idx + 1
	for i < len(lines) && insideTypeBody(lines[i]) {
		content := strings.TrimSpace(lines[i])
		i++

		if content == "" || strings.HasPrefix(content, "//") {
			continue
		}
		if strings.HasPrefix(content, "func") {
			typ.Methods = append(typ.Methods, content)
			continue
		}
		typ.Fields = append(typ.Fields, renderField(content))
	}

	return typ, i, true
}

// insideTypeBody reports whether a raw line still belongs to a type body.
// Tabs and spaces are both accepted as indentation.
func insideTypeBody(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// renderField normalizes a field declaration line. A trailing description
// is rendered as a line comment; any line that does not split into name and
// type (interface method references included) is kept verbatim.
func renderField(content string) string {
	m := fieldLineRe.FindStringSubmatch(content)
	if m == nil {
		return content
	}
	desc := strings.TrimSpace(m[3])
	desc = strings.TrimSpace(strings.TrimPrefix(desc, "//"))
	if desc == "" {
		return content
	}
	return fmt.Sprintf("%s %s // %s", m[1], m[2], desc)
}
