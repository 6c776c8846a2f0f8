package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zjregee/knowlix"
)

// Compile-time interface verification.
var _ knowlix.RepoService = (*RepoService)(nil)

// RepoService implements knowlix.RepoService using SQLite.
type RepoService struct {
	db *DB
}

// NewRepoService creates a new RepoService.
func NewRepoService(db *DB) *RepoService {
	return &RepoService{db: db}
}

// CreateRepo creates a new repo.
func (s *RepoService) CreateRepo(ctx context.Context, repo *knowlix.Repo) error {
	if err := repo.Validate(); err != nil {
		return err
	}

	repo.ID = uuid.New().String()
	now := time.Now().UTC()
	repo.CreatedAt = now
	repo.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO repos (id, name, source, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, repo.ID, repo.Name, repo.Source, repo.Version,
		repo.CreatedAt.Format(time.RFC3339), repo.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindRepoByID retrieves a repo by ID.
func (s *RepoService) FindRepoByID(ctx context.Context, id string) (*knowlix.Repo, error) {
	var repo knowlix.Repo
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source, version, created_at, updated_at
		FROM repos
		WHERE id = ?
	`, id).Scan(&repo.ID, &repo.Name, &repo.Source, &repo.Version, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, knowlix.Errorf(knowlix.ENOTFOUND, "repo not found")
	}
	if err != nil {
		return nil, err
	}

	if repo.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if repo.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &repo, nil
}

// FindRepos retrieves repos matching the filter.
func (s *RepoService) FindRepos(ctx context.Context, filter knowlix.RepoFilter) ([]*knowlix.Repo, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source, version, created_at, updated_at FROM repos WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repos []*knowlix.Repo
	for rows.Next() {
		var repo knowlix.Repo
		var createdAt, updatedAt string

		if err := rows.Scan(&repo.ID, &repo.Name, &repo.Source, &repo.Version, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if repo.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if repo.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		repos = append(repos, &repo)
	}

	return repos, rows.Err()
}

// UpdateRepo updates an existing repo.
func (s *RepoService) UpdateRepo(ctx context.Context, id string, upd knowlix.RepoUpdate) (*knowlix.Repo, error) {
	// First check if repo exists
	repo, err := s.FindRepoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Source != nil {
		repo.Source = *upd.Source
	}
	if upd.Version != nil {
		repo.Version = *upd.Version
	}

	// Validate before persisting
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	repo.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE repos
		SET source = ?, version = ?, updated_at = ?
		WHERE id = ?
	`, repo.Source, repo.Version, repo.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return repo, nil
}

// DeleteRepo permanently removes a repo.
func (s *RepoService) DeleteRepo(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM repos WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return knowlix.Errorf(knowlix.ENOTFOUND, "repo not found")
	}

	return nil
}
