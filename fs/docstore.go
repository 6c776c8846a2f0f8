// Package fs provides a file-based, versioned store for generated docs.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/zjregee/knowlix"
)

var slugRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Compile-time interface verification.
var _ knowlix.DocService = (*DocStore)(nil)

// DocStore writes generated docs as Markdown files under a base directory,
// one file per item at <base>/<repo>/<version>/<package>/<kind>/<name>.md,
// and maintains an index.json per repo version.
type DocStore struct {
	baseDir string
}

// NewDocStore creates a new DocStore rooted at baseDir.
func NewDocStore(baseDir string) *DocStore {
	return &DocStore{baseDir: baseDir}
}

// indexFile is the on-disk shape of a repo version's index.json.
type indexFile struct {
	Repo      string      `json:"repo"`
	Version   string      `json:"version"`
	UpdatedAt string      `json:"updated_at"`
	Items     []indexItem `json:"items"`
}

type indexItem struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Package     string `json:"package"`
	ImportPath  string `json:"import_path"`
	Signature   string `json:"signature"`
	Path        string `json:"path"`
	GeneratedAt string `json:"generated_at"`
	Generator   string `json:"generator"`
	Model       string `json:"model"`
}

// ExistsDoc reports whether a doc for the item already exists.
func (s *DocStore) ExistsDoc(ctx context.Context, repoSlug, version string, item knowlix.Item) bool {
	_, err := os.Stat(s.docPath(repoSlug, version, item))
	return err == nil
}

// CreateDoc writes a generated doc and updates the version index.
// An existing doc for the same item is replaced.
func (s *DocStore) CreateDoc(ctx context.Context, repoSlug, version string, doc *knowlix.GeneratedDoc) (string, error) {
	path := s.docPath(repoSlug, version, doc.Item)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(FormatDoc(doc)), 0o644); err != nil {
		return "", err
	}
	if err := s.updateIndex(repoSlug, version, doc, path); err != nil {
		return "", err
	}
	return path, nil
}

// FormatDoc renders a generated doc with YAML frontmatter.
func FormatDoc(doc *knowlix.GeneratedDoc) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: " + doc.Item.ID + "\n")
	b.WriteString("kind: " + doc.Item.Kind + "\n")
	b.WriteString("name: " + doc.Item.Name + "\n")
	b.WriteString("package: " + doc.Item.Package + "\n")
	b.WriteString("import_path: " + doc.Item.ImportPath + "\n")
	b.WriteString("signature: " + doc.Item.Signature + "\n")
	b.WriteString("generated_at: " + doc.GeneratedAt.UTC().Format(time.RFC3339) + "\n")
	b.WriteString("generator: " + doc.Generator + "\n")
	b.WriteString("model: " + doc.Model + "\n")
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(doc.Content))
	b.WriteString("\n")
	return b.String()
}

func (s *DocStore) docPath(repoSlug, version string, item knowlix.Item) string {
	return filepath.Join(s.baseDir,
		safeSlug(repoSlug),
		safeSlug(version),
		safeSlug(item.Package),
		safeSlug(item.Kind),
		fmt.Sprintf("%s.md", safeSlug(itemFilename(item))))
}

// updateIndex upserts the doc's entry in the repo version's index.json.
func (s *DocStore) updateIndex(repoSlug, version string, doc *knowlix.GeneratedDoc, docPath string) error {
	indexPath := filepath.Join(s.baseDir, safeSlug(repoSlug), safeSlug(version), "index.json")

	index := indexFile{Repo: repoSlug, Version: version, Items: []indexItem{}}
	if raw, err := os.ReadFile(indexPath); err == nil {
		_ = json.Unmarshal(raw, &index)
	}

	relPath, _ := filepath.Rel(s.baseDir, docPath)
	entry := indexItem{
		ID:          doc.Item.ID,
		Kind:        doc.Item.Kind,
		Name:        doc.Item.Name,
		Package:     doc.Item.Package,
		ImportPath:  doc.Item.ImportPath,
		Signature:   doc.Item.Signature,
		Path:        relPath,
		GeneratedAt: doc.GeneratedAt.UTC().Format(time.RFC3339),
		Generator:   doc.Generator,
		Model:       doc.Model,
	}

	updated := false
	for i := range index.Items {
		if index.Items[i].ID == doc.Item.ID {
			index.Items[i] = entry
			updated = true
			break
		}
	}
	if !updated {
		index.Items = append(index.Items, entry)
	}
	index.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(indexPath, encoded, 0o644)
}

// itemFilename prefixes method filenames with their receiver so methods on
// different types with the same name do not collide.
func itemFilename(item knowlix.Item) string {
	if item.Kind == knowlix.KindMethod && item.Receiver != "" {
		return item.Receiver + "_" + item.Name
	}
	return item.Name
}

func safeSlug(value string) string {
	slug := strings.Trim(slugRe.ReplaceAllString(value, "_"), "_")
	if slug == "" {
		return "unknown"
	}
	return slug
}
