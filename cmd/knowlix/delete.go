package main

import (
	"fmt"

	"github.com/zjregee/knowlix"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return knowlix.Errorf(knowlix.EINVALID, "use --force to confirm deletion")
	}

	repos, err := deps.Repos.FindRepos(deps.Ctx, knowlix.RepoFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}

	if len(repos) == 0 {
		fmt.Fprintf(deps.Stderr, "error: repo %q not found. Use 'knowlix list' to see available repos.\n", c.Name)
		return knowlix.Errorf(knowlix.ENOTFOUND, "repo %q not found", c.Name)
	}

	repo := repos[0]
	if err := deps.Repos.DeleteRepo(deps.Ctx, repo.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted repo %q\n", repo.Name)
	return nil
}
