package mock

import (
	"context"

	"github.com/sutaryash32/expodex"
)

var _ expodex.Collector = (*Collector)(nil)

// Collector is a mock implementation of expodex.Collector.
type Collector struct {
	CollectFn func(ctx context.Context) (expodex.LinkSet, error)
}

func (c *Collector) Collect(ctx context.Context) (expodex.LinkSet, error) {
	return c.CollectFn(ctx)
}
