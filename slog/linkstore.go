package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sutaryash32/expodex"
)

// Ensure LoggingLinkStore implements expodex.LinkStore.
var _ expodex.LinkStore = (*LoggingLinkStore)(nil)

// LoggingLinkStore wraps a LinkStore with debug logging.
type LoggingLinkStore struct {
	next   expodex.LinkStore
	logger *slog.Logger
}

// NewLoggingLinkStore creates a new LoggingLinkStore.
func NewLoggingLinkStore(next expodex.LinkStore, logger *slog.Logger) *LoggingLinkStore {
	return &LoggingLinkStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingLinkStore) Load(ctx context.Context) (links expodex.LinkSet, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load links",
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingLinkStore) Save(ctx context.Context, links expodex.LinkSet) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save links",
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, links)
}
