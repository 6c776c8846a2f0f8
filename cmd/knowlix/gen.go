package main

import (
	"context"
	"fmt"
	"time"

	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/gen"
	"github.com/zjregee/knowlix/git"
)

// timeoutDescriber bounds each generation request.
type timeoutDescriber struct {
	next    knowlix.Describer
	timeout time.Duration
}

func (d *timeoutDescriber) Describe(ctx context.Context, item knowlix.Item) (string, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	return d.next.Describe(ctx, item)
}

// Run executes the gen command.
func (c *GenCmd) Run(deps *Dependencies) error {
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
	dir, cleanup, err := resolveSource(deps.Ctx, repo.Source, c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	version := git.VersionKey(deps.Ctx, dir)

	packages, _, err := deps.Generator.ParseRepo(deps.Ctx, dir, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}
	items := knowlix.CollectItems(packages)

	deps.Generator.Force = c.Force
	deps.Generator.MaxItems = c.MaxItems

	progress := func(event gen.ProgressEvent) {
		switch event.Type {
		case gen.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Generating docs for %d items\n", event.Total)
		case gen.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Name)
		case gen.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Name, event.Error)
		}
	}

	result, err := deps.Generator.GenerateDocs(deps.Ctx, git.Slug(repo.Source), version, items, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}

	if version != repo.Version {
		if _, err := deps.Repos.UpdateRepo(deps.Ctx, repo.ID, knowlix.RepoUpdate{Version: &version}); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Generated %d docs (%d skipped, %d failed)\n",
		result.Docs, result.Skipped, result.Failed)

	return nil
}
