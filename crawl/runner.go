package crawl

import (
	"context"

	"github.com/sutaryash32/expodex"
	"golang.org/x/sync/errgroup"
)

// DetailReadySelector is the readiness condition for detail pages: a
// rendered body is enough, the field strategies tolerate the rest.
const DetailReadySelector = "body"

// Runner is the top-level control loop. It decides what work remains,
// drives fetch → extract → append for each pending link, and writes
// periodic checkpoints plus the final output.
//
// A run is resumable at any point: restarting reloads the cached link set
// and prior progress, recomputes the pending set, and continues. Up to
// CheckpointEvery-1 in-flight records may be re-fetched after a crash.
type Runner struct {
	Fetcher   expodex.Fetcher
	Extractor expodex.Extractor
	Collector expodex.Collector
	Links     expodex.LinkStore
	Progress  expodex.ProgressStore
	Archive   expodex.Archive // optional raw-HTML snapshots
	Limiter   expodex.Limiter // optional pacing between detail fetches

	// CheckpointEvery is the number of appended records between progress
	// snapshots. Defaults to 10.
	CheckpointEvery int

	// Concurrency bounds parallel detail-page fetches. Defaults to 1
	// (sequential). Records are appended in discovery order regardless.
	Concurrency int

	// Rediscover forces link discovery even when a cached link set exists.
	Rediscover bool

	// OnProgress, if set, receives events as the run proceeds. Events are
	// delivered from a single goroutine, never concurrently.
	OnProgress ProgressFunc
}

// detailResult holds the outcome of processing a single pending link.
type detailResult struct {
	position int
	url      string
	record   expodex.Exhibitor
	err      error
	canceled bool
}

// Run executes the pipeline: load-or-discover the link set, diff it against
// prior progress, scrape what is pending, and finalize. When nothing is
// pending the final output is written once from existing records and the
// run ends immediately.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	links, err := r.loadOrDiscoverLinks(ctx)
	if err != nil {
		return nil, err
	}

	records, err := r.loadProgress(ctx)
	if err != nil {
		return nil, err
	}

	processed := make(map[string]bool, len(records))
	for _, rec := range records {
		processed[rec.SourceURL] = true
	}
	pending := links.Pending(processed)

	result := &Result{Links: len(links)}

	if len(pending) == 0 {
		if !r.Progress.Finalized() {
			if err := r.Progress.Finalize(ctx, records); err != nil {
				return nil, err
			}
		}
		result.Records = len(records)
		r.emit(ProgressEvent{Type: ProgressFinished, Completed: len(records), Total: len(links)})
		return result, nil
	}

	records, scrapeErr := r.scrape(ctx, pending, records, result)
	if scrapeErr != nil {
		// Keep the cleanly appended records so a resumed run skips them.
		_ = r.Progress.Checkpoint(context.WithoutCancel(ctx), records)
		return nil, scrapeErr
	}

	if err := r.Progress.Checkpoint(ctx, records); err != nil {
		return nil, err
	}
	if err := r.Progress.Finalize(ctx, records); err != nil {
		return nil, err
	}

	result.Records = len(records)
	r.emit(ProgressEvent{Type: ProgressFinished, Completed: len(records), Total: len(links)})
	return result, nil
}

// loadOrDiscoverLinks returns the cached link set, running discovery and
// saving the result when no cache exists or rediscovery is forced.
func (r *Runner) loadOrDiscoverLinks(ctx context.Context) (expodex.LinkSet, error) {
	if !r.Rediscover {
		links, err := r.Links.Load(ctx)
		if err == nil {
			return links, nil
		}
		if expodex.ErrorCode(err) != expodex.ENOTFOUND {
			return nil, err
		}
	}

	links, err := r.Collector.Collect(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.Links.Save(ctx, links); err != nil {
		return nil, err
	}
	return links, nil
}

// loadProgress returns prior records. Corrupt progress is discarded with a
// ProgressRecovered event so the run proceeds with the full pending set
// instead of crashing at startup.
func (r *Runner) loadProgress(ctx context.Context) ([]expodex.Exhibitor, error) {
	records, err := r.Progress.Load(ctx)
	if err == nil {
		return records, nil
	}
	if expodex.ErrorCode(err) != expodex.EINVALID {
		return nil, err
	}
	r.emit(ProgressEvent{Type: ProgressRecovered, Error: err})
	return nil, nil
}

// scrape processes the pending links through a bounded worker pool. All
// appends happen at a single point in this goroutine: a hold-back buffer
// releases results strictly in discovery order, so the persisted record
// set is indistinguishable from a sequential run. Returns the grown record
// slice along with the first fatal error, if any.
func (r *Runner) scrape(ctx context.Context, pending expodex.LinkSet, records []expodex.Exhibitor, result *Result) ([]expodex.Exhibitor, error) {
	r.emit(ProgressEvent{Type: ProgressStarted, Total: len(pending)})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	resultCh := make(chan detailResult, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, link := range pending {
			g.Go(func() error {
				resultCh <- r.processLink(gctx, i, link)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	buffered := make(map[int]detailResult, concurrency)
	next := 0
	sinceCheckpoint := 0
	var runErr error

	for res := range resultCh {
		if runErr != nil {
			continue // draining so the workers can finish
		}
		if res.canceled {
			runErr = res.err
			cancel()
			continue
		}
		buffered[res.position] = res

		for runErr == nil {
			queued, ok := buffered[next]
			if !ok {
				break
			}
			delete(buffered, next)
			next++

			records = append(records, queued.record)
			result.Processed++
			if queued.err != nil {
				result.Failed++
				r.emit(ProgressEvent{Type: ProgressFailed, Completed: result.Processed, Total: len(pending), URL: queued.url, Error: queued.err})
			} else {
				r.emit(ProgressEvent{Type: ProgressCompleted, Completed: result.Processed, Total: len(pending), URL: queued.url})
			}

			sinceCheckpoint++
			if sinceCheckpoint >= r.checkpointEvery() {
				if err := r.Progress.Checkpoint(ctx, records); err != nil {
					runErr = err
					cancel()
					break
				}
				sinceCheckpoint = 0
				r.emit(ProgressEvent{Type: ProgressCheckpoint, Completed: len(records), Total: len(pending)})
			}
		}
	}

	return records, runErr
}

// processLink fetches, optionally archives, and extracts a single detail
// page. A transient fetch failure yields a degraded all-NA record so the
// link still counts as processed; a canceled context yields no record at
// all, leaving the link pending for the next run.
func (r *Runner) processLink(ctx context.Context, position int, link string) detailResult {
	res := detailResult{position: position, url: link}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			res.err = err
			res.canceled = true
			return res
		}
	}

	html, err := r.Fetcher.Fetch(ctx, link, DetailReadySelector)
	if err != nil {
		if ctx.Err() != nil {
			res.err = ctx.Err()
			res.canceled = true
			return res
		}
		res.err = err
		res.record = expodex.Degraded(link)
		return res
	}

	if r.Archive != nil {
		// Snapshot failures never affect crawl state.
		_ = r.Archive.SavePage(ctx, link, html)
	}

	res.record = r.Extractor.Extract(html, link)
	return res
}

func (r *Runner) checkpointEvery() int {
	if r.CheckpointEvery <= 0 {
		return 10
	}
	return r.CheckpointEvery
}

func (r *Runner) emit(event ProgressEvent) {
	if r.OnProgress != nil {
		r.OnProgress(event)
	}
}
