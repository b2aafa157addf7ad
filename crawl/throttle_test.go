package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutaryash32/expodex"
	"github.com/sutaryash32/expodex/crawl"
)

func TestThrottle(t *testing.T) {
	t.Parallel()

	t.Run("implements expodex.Limiter interface", func(t *testing.T) {
		t.Parallel()
		var _ expodex.Limiter = crawl.NewThrottle(time.Second)
	})

	t.Run("allows the first wait immediately", func(t *testing.T) {
		t.Parallel()

		throttle := crawl.NewThrottle(100 * time.Millisecond)

		start := time.Now()
		err := throttle.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first wait should be immediate")
	})

	t.Run("spaces successive waits by the configured delay", func(t *testing.T) {
		t.Parallel()

		throttle := crawl.NewThrottle(100 * time.Millisecond)

		err := throttle.Wait(context.Background())
		require.NoError(t, err)

		start := time.Now()
		err = throttle.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "second wait should observe the delay")
	})

	t.Run("never waits when the delay is zero", func(t *testing.T) {
		t.Parallel()

		throttle := crawl.NewThrottle(0)

		start := time.Now()
		for range 10 {
			require.NoError(t, throttle.Wait(context.Background()))
		}
		elapsed := time.Since(start)

		assert.Less(t, elapsed, 50*time.Millisecond, "zero delay should never block")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		throttle := crawl.NewThrottle(time.Second)

		// First wait takes the only token.
		err := throttle.Wait(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = throttle.Wait(ctx)
		assert.Error(t, err, "should fail when context times out")
	})
}
