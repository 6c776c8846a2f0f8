package main

import (
	"fmt"

	"github.com/zjregee/knowlix"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	repos, err := deps.Repos.FindRepos(deps.Ctx, knowlix.RepoFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}

	if len(repos) == 0 {
		fmt.Fprintln(deps.Stdout, "No repos found. Use 'knowlix add' to register one.")
		return nil
	}

	for _, r := range repos {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.Name, r.Source, r.Version)
	}

	return nil
}
