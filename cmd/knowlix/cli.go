package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/gen"
	"github.com/zjregee/knowlix/sqlite"
	"github.com/zjregee/knowlix/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *yaml.Config
	DB        *sqlite.DB
	Repos     knowlix.RepoService
	Chunks    knowlix.ChunkService
	Generator *gen.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Register a Go repository and index its API chunks"`
	List   ListCmd   `cmd:"" help:"List all registered repos"`
	Delete DeleteCmd `cmd:"" help:"Delete a repo and its chunks"`
	Chunks ChunksCmd `cmd:"" help:"List indexed chunks for a repo"`
	Scan   ScanCmd   `cmd:"" help:"Parse a repository and list its API items without storing anything"`
	Gen    GenCmd    `cmd:"" help:"Generate Markdown docs for a registered repo's API items"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name   string `arg:"" help:"Repo name"`
	Source string `arg:"" help:"GitHub URL, owner/repo shorthand, or local path"`
	Ref    string `help:"Git ref to check out (tag/branch/commit)"`
	Force  bool   `short:"f" help:"Delete existing repo first"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Repo name"`
	Force bool   `help:"Confirm deletion"`
}

// ChunksCmd is the "chunks" subcommand.
type ChunksCmd struct {
	Name string `arg:"" help:"Repo name"`
	Full bool   `help:"Show full chunk content"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Source string `arg:"" help:"GitHub URL, owner/repo shorthand, or local path"`
	Ref    string `help:"Git ref to check out (tag/branch/commit)"`
}

// GenCmd is the "gen" subcommand.
type GenCmd struct {
	Name        string `arg:"" help:"Repo name"`
	Ref         string `help:"Git ref to check out (tag/branch/commit)"`
	Output      string `short:"o" help:"Docs output directory (overrides config)"`
	Model       string `help:"Generation model (overrides config)"`
	Force       bool   `short:"f" help:"Regenerate docs even if they exist"`
	MaxItems    int    `help:"Maximum number of items to process (0 = no limit)"`
	Concurrency int    `help:"Simultaneous generation requests (overrides config)"`
	Timeout     int    `help:"Per-request timeout in seconds (overrides config)"`
}
