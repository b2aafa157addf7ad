package expodex

import "context"

// LinkStore persists the discovered link set between runs so discovery is
// skipped on restart.
type LinkStore interface {
	// Load reads the cached link set, order preserved.
	// Returns ENOTFOUND if no cache exists; an existing empty cache is a
	// valid empty set.
	Load(ctx context.Context) (LinkSet, error)

	// Save writes the full link set, overwriting any prior content.
	// Called exactly once per discovery run.
	Save(ctx context.Context, links LinkSet) error
}

// ProgressStore persists extracted records keyed by source URL, enabling
// resume without re-fetching completed work.
type ProgressStore interface {
	// Load parses previously persisted records in their persisted order.
	// A missing progress file is not an error and yields no records.
	// Returns EINVALID if a file exists but cannot be parsed; the caller
	// decides whether to recover.
	Load(ctx context.Context) ([]Exhibitor, error)

	// Checkpoint writes the entire accumulated record set so far, not a
	// delta, so the persisted file is always self-consistent and directly
	// resumable.
	Checkpoint(ctx context.Context, records []Exhibitor) error

	// Finalize writes the terminal output from the accumulated records.
	Finalize(ctx context.Context, records []Exhibitor) error

	// Finalized reports whether the terminal output already exists.
	Finalized() bool
}

// Archive stores raw fetched HTML snapshots for later inspection.
// Archiving is an optional side channel: failures are logged by callers
// and never affect crawl state.
type Archive interface {
	// SavePage records a snapshot of the page at url. Implementations
	// skip the write when the content is unchanged since the last
	// snapshot of the same URL.
	SavePage(ctx context.Context, url, html string) error
}
