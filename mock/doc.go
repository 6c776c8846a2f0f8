package mock

import (
	"context"

	"github.com/zjregee/knowlix"
)

var _ knowlix.DocService = (*DocService)(nil)

// DocService is a mock implementation of knowlix.DocService.
type DocService struct {
	ExistsDocFn func(ctx context.Context, repoSlug, version string, item knowlix.Item) bool
	CreateDocFn func(ctx context.Context, repoSlug, version string, doc *knowlix.GeneratedDoc) (string, error)
}

func (s *DocService) ExistsDoc(ctx context.Context, repoSlug, version string, item knowlix.Item) bool {
	return s.ExistsDocFn(ctx, repoSlug, version, item)
}

func (s *DocService) CreateDoc(ctx context.Context, repoSlug, version string, doc *knowlix.GeneratedDoc) (string, error) {
	return s.CreateDocFn(ctx, repoSlug, version, doc)
}
