package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/zjregee/knowlix"
)

// Ensure LoggingLister implements knowlix.PackageLister.
var _ knowlix.PackageLister = (*LoggingLister)(nil)

// LoggingLister wraps a PackageLister with enumeration logging.
type LoggingLister struct {
	next   knowlix.PackageLister
	logger *slog.Logger
}

// NewLoggingLister creates a new LoggingLister.
func NewLoggingLister(next knowlix.PackageLister, logger *slog.Logger) *LoggingLister {
	return &LoggingLister{next: next, logger: logger}
}

// ListPackages delegates to the wrapped lister and logs the outcome.
func (l *LoggingLister) ListPackages(ctx context.Context, dir string) ([]knowlix.PackageMeta, error) {
	begin := time.Now()
	metas, err := l.next.ListPackages(ctx, dir)
	if err != nil {
		l.logger.Error("package listing failed",
			"dir", dir,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	l.logger.Info("packages listed",
		"dir", dir,
		"count", len(metas),
		"duration", time.Since(begin),
	)
	return metas, nil
}
