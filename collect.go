package expodex

import "context"

// Collector discovers detail-page links by walking the paginated listing
// pages of the directory site.
type Collector interface {
	// Collect fetches every listing page in turn, extracts candidate
	// detail-page links and returns them deduplicated in discovery order.
	// A listing page that fails to fetch or contributes no links is
	// skipped, never fatal; Collect fails only when the context is
	// canceled.
	Collect(ctx context.Context) (LinkSet, error)
}
