package knowlix

import (
	"context"
	"time"
)

// Repo represents a Go repository registered for indexing.
type Repo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`  // GitHub URL, owner/repo shorthand, or local path
	Version   string    `json:"version"` // version key of the last indexed checkout
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the repo contains invalid fields.
func (r *Repo) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "repo name required")
	}
	if r.Source == "" {
		return Errorf(EINVALID, "repo source required")
	}
	return nil
}

// RepoService represents a service for managing repos.
type RepoService interface {
	// CreateRepo creates a new repo.
	CreateRepo(ctx context.Context, repo *Repo) error

	// FindRepoByID retrieves a repo by ID.
	// Returns ENOTFOUND if repo does not exist.
	FindRepoByID(ctx context.Context, id string) (*Repo, error)

	// FindRepos retrieves repos matching the filter.
	FindRepos(ctx context.Context, filter RepoFilter) ([]*Repo, error)

	// UpdateRepo updates an existing repo.
	// Returns ENOTFOUND if repo does not exist.
	UpdateRepo(ctx context.Context, id string, upd RepoUpdate) (*Repo, error)

	// DeleteRepo permanently removes a repo and all associated chunks.
	// Returns ENOTFOUND if repo does not exist.
	DeleteRepo(ctx context.Context, id string) error
}

// RepoFilter represents a filter for FindRepos.
type RepoFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RepoUpdate represents fields that can be updated on a repo.
type RepoUpdate struct {
	Source  *string `json:"source"`
	Version *string `json:"version"`
}
