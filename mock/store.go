package mock

import (
	"context"

	"github.com/sutaryash32/expodex"
)

var _ expodex.LinkStore = (*LinkStore)(nil)

// LinkStore is a mock implementation of expodex.LinkStore.
type LinkStore struct {
	LoadFn func(ctx context.Context) (expodex.LinkSet, error)
	SaveFn func(ctx context.Context, links expodex.LinkSet) error
}

func (s *LinkStore) Load(ctx context.Context) (expodex.LinkSet, error) {
	return s.LoadFn(ctx)
}

func (s *LinkStore) Save(ctx context.Context, links expodex.LinkSet) error {
	return s.SaveFn(ctx, links)
}

var _ expodex.ProgressStore = (*ProgressStore)(nil)

// ProgressStore is a mock implementation of expodex.ProgressStore.
type ProgressStore struct {
	LoadFn       func(ctx context.Context) ([]expodex.Exhibitor, error)
	CheckpointFn func(ctx context.Context, records []expodex.Exhibitor) error
	FinalizeFn   func(ctx context.Context, records []expodex.Exhibitor) error
	FinalizedFn  func() bool
}

func (s *ProgressStore) Load(ctx context.Context) ([]expodex.Exhibitor, error) {
	return s.LoadFn(ctx)
}

func (s *ProgressStore) Checkpoint(ctx context.Context, records []expodex.Exhibitor) error {
	return s.CheckpointFn(ctx, records)
}

func (s *ProgressStore) Finalize(ctx context.Context, records []expodex.Exhibitor) error {
	return s.FinalizeFn(ctx, records)
}

func (s *ProgressStore) Finalized() bool {
	if s.FinalizedFn != nil {
		return s.FinalizedFn()
	}
	return false
}

var _ expodex.Archive = (*Archive)(nil)

// Archive is a mock implementation of expodex.Archive.
type Archive struct {
	SavePageFn func(ctx context.Context, url string, html string) error
}

func (a *Archive) SavePage(ctx context.Context, url string, html string) error {
	return a.SavePageFn(ctx, url, html)
}
