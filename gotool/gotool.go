// Package gotool invokes the Go toolchain to enumerate a repository's
// packages and produce per-package documentation text. It is the external
// collaborator whose output the parsing core consumes as opaque input.
package gotool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/zjregee/knowlix"
)

// Compile-time interface verification.
var (
	_ knowlix.PackageLister = (*Lister)(nil)
	_ knowlix.DocLoader     = (*DocLoader)(nil)
)

// Lister enumerates packages with `go list -json ./...`.
type Lister struct {
	// GoBin is the go binary to invoke. Defaults to "go" on PATH.
	GoBin string
}

// NewLister creates a new Lister using the go binary on PATH.
func NewLister() *Lister {
	return &Lister{GoBin: "go"}
}

// ListPackages returns metadata for every package under dir.
func (l *Lister) ListPackages(ctx context.Context, dir string) ([]knowlix.PackageMeta, error) {
	cmd := exec.CommandContext(ctx, l.GoBin, "list", "-json", "./...")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, knowlix.Errorf(knowlix.EUNAVAILABLE, "go list failed: %s", strings.TrimSpace(string(output)))
	}
	return DecodePackages(output)
}

// DecodePackages decodes the concatenated-JSON stream emitted by
// `go list -json` into package metadata.
func DecodePackages(payload []byte) ([]knowlix.PackageMeta, error) {
	decoder := json.NewDecoder(bytes.NewReader(payload))

	metas := []knowlix.PackageMeta{}
	for {
		var info struct {
			Name       string `json:"Name"`
			ImportPath string `json:"ImportPath"`
			Dir        string `json:"Dir"`
			Doc        string `json:"Doc"`
		}
		if err := decoder.Decode(&info); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to decode go list output: %w", err)
		}
		metas = append(metas, knowlix.PackageMeta{
			Name:       info.Name,
			ImportPath: info.ImportPath,
			Dir:        info.Dir,
			Doc:        info.Doc,
		})
	}

	return metas, nil
}

// DocLoader produces documentation text with `go doc -all`.
type DocLoader struct {
	// GoBin is the go binary to invoke. Defaults to "go" on PATH.
	GoBin string
}

// NewDocLoader creates a new DocLoader using the go binary on PATH.
func NewDocLoader() *DocLoader {
	return &DocLoader{GoBin: "go"}
}

// LoadDoc returns the raw documentation text for the package. It prefers
// running inside the package directory and falls back to the import path.
func (d *DocLoader) LoadDoc(ctx context.Context, meta knowlix.PackageMeta) (string, error) {
	if meta.Dir != "" {
		cmd := exec.CommandContext(ctx, d.GoBin, "doc", "-all", "./")
		cmd.Dir = meta.Dir
		if output, err := cmd.CombinedOutput(); err == nil {
			return string(output), nil
		}
	}

	if meta.ImportPath == "" {
		return "", nil
	}

	cmd := exec.CommandContext(ctx, d.GoBin, "doc", "-all", meta.ImportPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", knowlix.Errorf(knowlix.EUNAVAILABLE, "go doc failed for %s: %s",
			meta.ImportPath, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}
