package main

import (
	"context"
	"os"

	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/git"
)

// resolveSource turns a repo source into a local directory ready for parsing.
// GitHub sources are cloned into a temp directory and the returned cleanup
// removes it; local paths are used in place with a nil cleanup. Refs are only
// honored for cloned sources so a user's working tree is never touched.
func resolveSource(ctx context.Context, source, ref string) (string, func(), error) {
	if git.IsGitHubRepo(source) {
		// Arbitrary refs need full history; HEAD-only runs can stay shallow.
		depth := 1
		if ref != "" {
			depth = 0
		}
		dir, cleanup, err := git.CloneToTemp(ctx, source, depth)
		if err != nil {
			return "", nil, knowlix.Errorf(knowlix.EUNAVAILABLE, "clone %s: %v", source, err)
		}
		if err := git.Checkout(ctx, dir, ref); err != nil {
			cleanup()
			return "", nil, knowlix.Errorf(knowlix.EUNAVAILABLE, "checkout %s: %v", ref, err)
		}
		return dir, cleanup, nil
	}

	if ref != "" {
		return "", nil, knowlix.Errorf(knowlix.EINVALID, "--ref requires a GitHub source")
	}
	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return "", nil, knowlix.Errorf(knowlix.EINVALID, "source %q is not a directory", source)
	}
	return source, nil, nil
}
