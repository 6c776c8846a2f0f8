package mock

import (
	"context"

	"github.com/zjregee/knowlix"
)

var _ knowlix.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of knowlix.ChunkService.
type ChunkService struct {
	CreateChunksFn       func(ctx context.Context, chunks []*knowlix.Chunk) error
	FindChunkByIDFn      func(ctx context.Context, id string) (*knowlix.Chunk, error)
	FindChunksFn         func(ctx context.Context, filter knowlix.ChunkFilter) ([]*knowlix.Chunk, error)
	DeleteChunksByRepoFn func(ctx context.Context, repoID string) error
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*knowlix.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunkByID(ctx context.Context, id string) (*knowlix.Chunk, error) {
	return s.FindChunkByIDFn(ctx, id)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter knowlix.ChunkFilter) ([]*knowlix.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) DeleteChunksByRepo(ctx context.Context, repoID string) error {
	return s.DeleteChunksByRepoFn(ctx, repoID)
}
