// Package crawl provides the crawl orchestration: listing-page link
// discovery, the resumable fetch-extract-persist loop, and the politeness
// throttle pacing both.
package crawl

// ProgressEvent reports progress during discovery or scraping.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressStarted opens a phase; Total carries the amount of work.
	ProgressStarted ProgressType = iota
	// ProgressCompleted reports one successfully processed URL.
	ProgressCompleted
	// ProgressFailed reports a URL that could not be fetched. During
	// scraping the link still counts as processed via a degraded record.
	ProgressFailed
	// ProgressCheckpoint reports a progress snapshot written to disk;
	// Completed carries the number of records persisted.
	ProgressCheckpoint
	// ProgressRecovered reports corrupt prior progress that was discarded;
	// the run proceeds with the full pending set.
	ProgressRecovered
	// ProgressFinished closes a phase.
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of a run.
type Result struct {
	Links     int // detail links in the link set
	Processed int // links processed during this run
	Failed    int // links that produced degraded records this run
	Records   int // records persisted when the run finished
}
