package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sutaryash32/expodex"
)

// Ensure LoggingProgressStore implements expodex.ProgressStore.
var _ expodex.ProgressStore = (*LoggingProgressStore)(nil)

// LoggingProgressStore wraps a ProgressStore with debug logging.
type LoggingProgressStore struct {
	next   expodex.ProgressStore
	logger *slog.Logger
}

// NewLoggingProgressStore creates a new LoggingProgressStore.
func NewLoggingProgressStore(next expodex.ProgressStore, logger *slog.Logger) *LoggingProgressStore {
	return &LoggingProgressStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingProgressStore) Load(ctx context.Context) (records []expodex.Exhibitor, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load progress",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Checkpoint delegates to the wrapped store and logs the operation.
func (s *LoggingProgressStore) Checkpoint(ctx context.Context, records []expodex.Exhibitor) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("checkpoint progress",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Checkpoint(ctx, records)
}

// Finalize delegates to the wrapped store and logs the operation.
func (s *LoggingProgressStore) Finalize(ctx context.Context, records []expodex.Exhibitor) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("finalize progress",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Finalize(ctx, records)
}

// Finalized delegates to the wrapped store.
func (s *LoggingProgressStore) Finalized() bool {
	return s.next.Finalized()
}
