// Package slog provides logging decorators for knowlix services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/zjregee/knowlix"
)

// Ensure LoggingDescriber implements knowlix.Describer.
var _ knowlix.Describer = (*LoggingDescriber)(nil)

// LoggingDescriber wraps a Describer with per-item generation logging.
type LoggingDescriber struct {
	next   knowlix.Describer
	logger *slog.Logger
}

// NewLoggingDescriber creates a new LoggingDescriber.
func NewLoggingDescriber(next knowlix.Describer, logger *slog.Logger) *LoggingDescriber {
	return &LoggingDescriber{next: next, logger: logger}
}

// Describe delegates to the wrapped describer and logs the outcome.
func (d *LoggingDescriber) Describe(ctx context.Context, item knowlix.Item) (string, error) {
	begin := time.Now()
	content, err := d.next.Describe(ctx, item)
	if err != nil {
		d.logger.Error("doc generation failed",
			"item", item.ID,
			"kind", item.Kind,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	d.logger.Info("doc generated",
		"item", item.ID,
		"kind", item.Kind,
		"bytes", len(content),
		"duration", time.Since(begin),
	)
	return content, nil
}
