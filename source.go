package knowlix

import "context"

// PackageLister enumerates the packages of a Go repository. The toolchain
// invocation behind it is an external collaborator; the parsing core only
// ever sees its output.
type PackageLister interface {
	// ListPackages returns metadata for every package under dir.
	ListPackages(ctx context.Context, dir string) ([]PackageMeta, error)
}

// DocLoader produces the documentation text for one package.
type DocLoader interface {
	// LoadDoc returns the raw documentation text for the package.
	LoadDoc(ctx context.Context, meta PackageMeta) (string, error)
}

// RequestLimiter throttles outbound requests to a generation backend.
type RequestLimiter interface {
	// Wait blocks until the rate limit allows another request.
	// Returns an error if the context is canceled before then.
	Wait(ctx context.Context) error
}
