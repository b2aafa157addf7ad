package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutaryash32/expodex"
	"github.com/sutaryash32/expodex/mock"
	expslog "github.com/sutaryash32/expodex/slog"
)

func TestLoggingProgressStore(t *testing.T) {
	t.Parallel()

	records := []expodex.Exhibitor{
		{Name: "Acme", Website: expodex.NA, Booth: expodex.NA, Contact: expodex.NA, SourceURL: "https://expo.example.com/exhibitor-details?id=1"},
		{Name: "Globex", Website: expodex.NA, Booth: expodex.NA, Contact: expodex.NA, SourceURL: "https://expo.example.com/exhibitor-details?id=2"},
	}

	t.Run("logs load with record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProgressStore{
			LoadFn: func(ctx context.Context) ([]expodex.Exhibitor, error) {
				return records, nil
			},
		}

		store := expslog.NewLoggingProgressStore(inner, logger)
		loaded, err := store.Load(context.Background())

		require.NoError(t, err)
		assert.Len(t, loaded, 2)
		output := buf.String()
		assert.Contains(t, output, "load progress")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs checkpoint with record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProgressStore{
			CheckpointFn: func(ctx context.Context, _ []expodex.Exhibitor) error {
				return nil
			},
		}

		store := expslog.NewLoggingProgressStore(inner, logger)
		err := store.Checkpoint(context.Background(), records)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "checkpoint progress")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs checkpoint error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProgressStore{
			CheckpointFn: func(ctx context.Context, _ []expodex.Exhibitor) error {
				return errors.New("disk full")
			},
		}

		store := expslog.NewLoggingProgressStore(inner, logger)
		err := store.Checkpoint(context.Background(), records)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "checkpoint progress")
		assert.Contains(t, output, "err=\"disk full\"")
	})

	t.Run("logs finalize with record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProgressStore{
			FinalizeFn: func(ctx context.Context, _ []expodex.Exhibitor) error {
				return nil
			},
		}

		store := expslog.NewLoggingProgressStore(inner, logger)
		err := store.Finalize(context.Background(), records)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "finalize progress")
		assert.Contains(t, output, "count=2")
	})

	t.Run("passes finalized through without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProgressStore{
			FinalizedFn: func() bool { return true },
		}

		store := expslog.NewLoggingProgressStore(inner, logger)

		assert.True(t, store.Finalized())
		assert.Empty(t, buf.String())
	})
}
