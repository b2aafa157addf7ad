// Package slog provides logging decorators for expodex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sutaryash32/expodex"
)

// Ensure LoggingCollector implements expodex.Collector.
var _ expodex.Collector = (*LoggingCollector)(nil)

// LoggingCollector wraps a Collector with debug logging.
type LoggingCollector struct {
	next   expodex.Collector
	logger *slog.Logger
}

// NewLoggingCollector creates a new LoggingCollector.
func NewLoggingCollector(next expodex.Collector, logger *slog.Logger) *LoggingCollector {
	return &LoggingCollector{next: next, logger: logger}
}

// Collect delegates to the wrapped collector and logs the operation.
func (c *LoggingCollector) Collect(ctx context.Context) (links expodex.LinkSet, err error) {
	defer func(begin time.Time) {
		c.logger.Info("link discovery",
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Collect(ctx)
}
