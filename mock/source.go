package mock

import (
	"context"

	"github.com/zjregee/knowlix"
)

var (
	_ knowlix.PackageLister  = (*PackageLister)(nil)
	_ knowlix.DocLoader      = (*DocLoader)(nil)
	_ knowlix.RequestLimiter = (*RequestLimiter)(nil)
)

// PackageLister is a mock implementation of knowlix.PackageLister.
type PackageLister struct {
	ListPackagesFn func(ctx context.Context, dir string) ([]knowlix.PackageMeta, error)
}

func (l *PackageLister) ListPackages(ctx context.Context, dir string) ([]knowlix.PackageMeta, error) {
	return l.ListPackagesFn(ctx, dir)
}

// DocLoader is a mock implementation of knowlix.DocLoader.
type DocLoader struct {
	LoadDocFn func(ctx context.Context, meta knowlix.PackageMeta) (string, error)
}

func (d *DocLoader) LoadDoc(ctx context.Context, meta knowlix.PackageMeta) (string, error) {
	return d.LoadDocFn(ctx, meta)
}

// RequestLimiter is a mock implementation of knowlix.RequestLimiter.
type RequestLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RequestLimiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
