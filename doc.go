package knowlix

import (
	"context"
	"time"
)

// GeneratedDoc is a Markdown document generated for one API item.
type GeneratedDoc struct {
	Item        Item      `json:"item"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generatedAt"`
	Generator   string    `json:"generator"`
	Model       string    `json:"model"`
}

// Describer generates documentation prose for API items.
type Describer interface {
	// Describe generates Markdown documentation for an API item.
	Describe(ctx context.Context, item Item) (string, error)
}

// DocService represents a versioned store of generated docs.
type DocService interface {
	// ExistsDoc reports whether a doc for the item already exists at the
	// given repo slug and version.
	ExistsDoc(ctx context.Context, repoSlug, version string, item Item) bool

	// CreateDoc writes a generated doc and returns the path it was
	// written to. An existing doc for the same item is replaced.
	CreateDoc(ctx context.Context, repoSlug, version string, doc *GeneratedDoc) (string, error)
}
