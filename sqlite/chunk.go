package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zjregee/knowlix"
)

// Compile-time interface verification.
var _ knowlix.ChunkService = (*ChunkService)(nil)

// ChunkService implements knowlix.ChunkService using SQLite.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateChunks creates multiple chunks in a batch.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*knowlix.Chunk) error {
	now := time.Now().UTC()

	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}

		chunk.ID = uuid.New().String()
		chunk.ContentHash = hashContent(chunk.Content)
		chunk.CreatedAt = now

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO chunks (id, repo_id, package, kind, name, content, content_hash, position, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, chunk.ID, chunk.RepoID, chunk.Package, chunk.Kind, chunk.Name, chunk.Content,
			chunk.ContentHash, chunk.Position, chunk.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindChunkByID retrieves a chunk by ID.
func (s *ChunkService) FindChunkByID(ctx context.Context, id string) (*knowlix.Chunk, error) {
	var chunk knowlix.Chunk
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, repo_id, package, kind, name, content, content_hash, position, created_at
		FROM chunks
		WHERE id = ?
	`, id).Scan(&chunk.ID, &chunk.RepoID, &chunk.Package, &chunk.Kind, &chunk.Name,
		&chunk.Content, &chunk.ContentHash, &chunk.Position, &createdAt)

	if err == sql.ErrNoRows {
		return nil, knowlix.Errorf(knowlix.ENOTFOUND, "chunk not found")
	}
	if err != nil {
		return nil, err
	}

	if chunk.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &chunk, nil
}

// FindChunks retrieves chunks matching the filter, ordered by position.
func (s *ChunkService) FindChunks(ctx context.Context, filter knowlix.ChunkFilter) ([]*knowlix.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, repo_id, package, kind, name, content, content_hash, position, created_at FROM chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RepoID != nil {
		query.WriteString(" AND repo_id = ?")
		args = append(args, *filter.RepoID)
	}
	if filter.Package != nil {
		query.WriteString(" AND package = ?")
		args = append(args, *filter.Package)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*knowlix.Chunk
	for rows.Next() {
		var chunk knowlix.Chunk
		var createdAt string

		if err := rows.Scan(&chunk.ID, &chunk.RepoID, &chunk.Package, &chunk.Kind, &chunk.Name,
			&chunk.Content, &chunk.ContentHash, &chunk.Position, &createdAt); err != nil {
			return nil, err
		}

		if chunk.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		chunks = append(chunks, &chunk)
	}

	return chunks, rows.Err()
}

// DeleteChunksByRepo removes all chunks for a repo.
func (s *ChunkService) DeleteChunksByRepo(ctx context.Context, repoID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE repo_id = ?", repoID)
	return err
}
