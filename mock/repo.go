package mock

import (
	"context"

	"github.com/zjregee/knowlix"
)

var _ knowlix.RepoService = (*RepoService)(nil)

// RepoService is a mock implementation of knowlix.RepoService.
type RepoService struct {
	CreateRepoFn   func(ctx context.Context, repo *knowlix.Repo) error
	FindRepoByIDFn func(ctx context.Context, id string) (*knowlix.Repo, error)
	FindReposFn    func(ctx context.Context, filter knowlix.RepoFilter) ([]*knowlix.Repo, error)
	UpdateRepoFn   func(ctx context.Context, id string, upd knowlix.RepoUpdate) (*knowlix.Repo, error)
	DeleteRepoFn   func(ctx context.Context, id string) error
}

func (s *RepoService) CreateRepo(ctx context.Context, repo *knowlix.Repo) error {
	return s.CreateRepoFn(ctx, repo)
}

func (s *RepoService) FindRepoByID(ctx context.Context, id string) (*knowlix.Repo, error) {
	return s.FindRepoByIDFn(ctx, id)
}

func (s *RepoService) FindRepos(ctx context.Context, filter knowlix.RepoFilter) ([]*knowlix.Repo, error) {
	return s.FindReposFn(ctx, filter)
}

func (s *RepoService) UpdateRepo(ctx context.Context, id string, upd knowlix.RepoUpdate) (*knowlix.Repo, error) {
	return s.UpdateRepoFn(ctx, id, upd)
}

func (s *RepoService) DeleteRepo(ctx context.Context, id string) error {
	return s.DeleteRepoFn(ctx, id)
}
