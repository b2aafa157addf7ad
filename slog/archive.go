package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sutaryash32/expodex"
)

// Ensure LoggingArchive implements expodex.Archive.
var _ expodex.Archive = (*LoggingArchive)(nil)

// LoggingArchive wraps an Archive with debug logging. Archive failures are
// deliberately non-fatal to a crawl, so this decorator is the one place they
// become visible.
type LoggingArchive struct {
	next   expodex.Archive
	logger *slog.Logger
}

// NewLoggingArchive creates a new LoggingArchive.
func NewLoggingArchive(next expodex.Archive, logger *slog.Logger) *LoggingArchive {
	return &LoggingArchive{next: next, logger: logger}
}

// SavePage delegates to the wrapped archive and logs the operation.
func (a *LoggingArchive) SavePage(ctx context.Context, url string, html string) (err error) {
	defer func(begin time.Time) {
		a.logger.Info("archive page",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.SavePage(ctx, url, html)
}
