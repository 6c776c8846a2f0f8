// Package git handles GitHub repository sources: URL normalization, shallow
// clones into temp directories, ref checkout, and version key derivation.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Owner names start alphanumeric, so relative paths like "./x" and
	// "../x" never match the shorthand form.
	shortRepoRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*/[A-Za-z0-9._-]+$`)
	segmentRe   = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// IsGitHubRepo reports whether source looks like a GitHub repository
// reference rather than a local path.
func IsGitHubRepo(source string) bool {
	return strings.HasPrefix(source, "https://github.com/") ||
		strings.HasPrefix(source, "http://github.com/") ||
		strings.HasPrefix(source, "git@github.com:") ||
		shortRepoRe.MatchString(source)
}

// NormalizeGitHubRepo rewrites ssh, http, and owner/repo shorthand sources
// to their canonical https form.
func NormalizeGitHubRepo(source string) string {
	if strings.HasPrefix(source, "git@github.com:") {
		return "https://github.com/" + strings.TrimPrefix(source, "git@github.com:")
	}
	if strings.HasPrefix(source, "http://github.com/") {
		return "https://github.com/" + strings.TrimPrefix(source, "http://github.com/")
	}
	if shortRepoRe.MatchString(source) {
		return "https://github.com/" + source
	}
	return source
}

// Slug derives a filesystem-safe repository slug from a source.
// GitHub sources become "owner_repo"; local paths use their base name.
func Slug(source string) string {
	if IsGitHubRepo(source) {
		normalized := NormalizeGitHubRepo(source)
		slug := strings.TrimPrefix(normalized, "https://github.com/")
		slug = strings.TrimSuffix(strings.TrimRight(slug, "/"), ".git")
		return strings.ReplaceAll(slug, "/", "_")
	}
	return filepath.Base(source)
}

// CloneToTemp clones a GitHub source into a temp directory and returns the
// directory plus a cleanup function. A depth of 0 performs a full clone,
// which is required before checking out arbitrary refs.
func CloneToTemp(ctx context.Context, source string, depth int) (string, func(), error) {
	repoURL := NormalizeGitHubRepo(source)

	tempDir, err := os.MkdirTemp("", "knowlix-")
	if err != nil {
		return "", nil, err
	}

	args := []string{"clone"}
	if depth > 0 {
		args = append(args, "--depth", fmt.Sprint(depth))
	}
	args = append(args, repoURL, tempDir)

	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", nil, fmt.Errorf("git clone failed: %s", strings.TrimSpace(string(output)))
	}

	cleanup := func() {
		_ = os.RemoveAll(tempDir)
	}
	return tempDir, cleanup, nil
}

// Checkout checks out a ref in the repository. An empty ref is a no-op.
func Checkout(ctx context.Context, repoPath, ref string) error {
	if ref == "" {
		return nil
	}
	cmd := exec.CommandContext(ctx, "git", "checkout", ref)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git checkout failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

// VersionKey derives a "<tag>-<commit>" key for the current checkout.
// Missing tags yield "untagged"; a missing commit yields "unknown".
func VersionKey(ctx context.Context, repoPath string) string {
	commit, err := headCommit(ctx, repoPath)
	if err != nil || commit == "" {
		commit = "unknown"
	}
	tag, _ := headTag(ctx, repoPath)
	if tag == "" {
		tag = "untagged"
	}
	return safeSegment(tag) + "-" + commit
}

func headCommit(ctx context.Context, repoPath string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

func headTag(ctx context.Context, repoPath string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "tag", "--points-at", "HEAD")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", nil
}

// safeSegment replaces characters unsafe for file paths with underscores.
func safeSegment(value string) string {
	slug := strings.Trim(segmentRe.ReplaceAllString(value, "_"), "_")
	if slug == "" {
		return "unknown"
	}
	return slug
}
