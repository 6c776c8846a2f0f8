package knowlix

import (
	"context"
	"time"
)

// Chunk is an independent, self-contained text block describing one
// function or one type, intended for downstream embedding/indexing. The
// content carries enough context (package name, kind, fields, methods) to
// stand alone; a chunk holds no reference back to its source record and is
// never mutated after creation.
type Chunk struct {
	ID          string    `json:"id"`
	RepoID      string    `json:"repoId"`
	Package     string    `json:"package"`
	Kind        string    `json:"kind"` // KindFunction, KindMethod, or KindType
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"` // emission order within the repo
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.RepoID == "" {
		return Errorf(EINVALID, "chunk repo ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// ChunkService represents a service for managing stored chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunkByID retrieves a chunk by ID.
	// Returns ENOTFOUND if chunk does not exist.
	FindChunkByID(ctx context.Context, id string) (*Chunk, error)

	// FindChunks retrieves chunks matching the filter, ordered by position.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)

	// DeleteChunksByRepo removes all chunks for a repo.
	DeleteChunksByRepo(ctx context.Context, repoID string) error
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID      *string `json:"id"`
	RepoID  *string `json:"repoId"`
	Package *string `json:"package"`
	Kind    *string `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
