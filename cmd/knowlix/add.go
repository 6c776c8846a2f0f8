package main

import (
	"fmt"

	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/gen"
	"github.com/zjregee/knowlix/git"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Force mode: delete existing repo first
	if c.Force {
		existing, err := deps.Repos.FindRepos(deps.Ctx, knowlix.RepoFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Repos.DeleteRepo(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
				return err
			}
		}
	}

	dir, cleanup, err := resolveSource(deps.Ctx, c.Source, c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	repo := &knowlix.Repo{
		Name:    c.Name,
		Source:  c.Source,
		Version: git.VersionKey(deps.Ctx, dir),
	}

	if err := deps.Repos.CreateRepo(deps.Ctx, repo); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added repo %q (%s)\n", c.Name, repo.ID)

	progress := func(event gen.ProgressEvent) {
		switch event.Type {
		case gen.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d packages\n", event.Total)
		case gen.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Name, event.Error)
		case gen.ProgressFinished:
			// Summary printed after indexing completes
		}
	}

	result, err := deps.Generator.IndexRepo(deps.Ctx, repo, dir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error indexing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Indexed %d packages (%d functions, %d types, %d chunks)\n",
		result.Packages, result.Functions, result.Types, result.Chunks)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d packages failed to parse\n", result.Failed)
	}

	return nil
}
