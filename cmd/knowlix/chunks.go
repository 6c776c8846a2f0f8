package main

import (
	"fmt"

	"github.com/zjregee/knowlix"
)

// Run executes the chunks command.
func (c *ChunksCmd) Run(deps *Dependencies) error {
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
	chunks, err := deps.Chunks.FindChunks(deps.Ctx, knowlix.ChunkFilter{RepoID: &repo.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}

	if len(chunks) == 0 {
		fmt.Fprintln(deps.Stdout, "No chunks indexed. Use 'knowlix add --force' to reindex.")
		return nil
	}

	for _, ch := range chunks {
		if c.Full {
			fmt.Fprintf(deps.Stdout, "--- %s.%s (%s)\n%s\n\n", ch.Package, ch.Name, ch.Kind, ch.Content)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%4d  %-8s  %s.%s\n", ch.Position, ch.Kind, ch.Package, ch.Name)
	}

	return nil
}
