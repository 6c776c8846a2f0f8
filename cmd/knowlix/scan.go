package main

import (
	"fmt"

	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/gen"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	dir, cleanup, err := resolveSource(deps.Ctx, c.Source, c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	progress := func(event gen.ProgressEvent) {
		if event.Type == gen.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Name, event.Error)
		}
	}

	packages, result, err := deps.Generator.ParseRepo(deps.Ctx, dir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", knowlix.ErrorMessage(err))
		return err
	}

	for _, item := range knowlix.CollectItems(packages) {
		fmt.Fprintf(deps.Stdout, "%-8s  %s  %s\n", item.Kind, item.Package, item.Signature)
	}

	fmt.Fprintf(deps.Stdout, "\n%d packages, %d functions, %d types\n",
		result.Packages, result.Functions, result.Types)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d packages failed to parse\n", result.Failed)
	}

	return nil
}
