package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sutaryash32/expodex/crawl"
)

// Run executes the crawl pipeline and renders progress to the attached writers.
func (c *RunCmd) Run(deps *Dependencies) error {
	result, err := deps.Runner.Run(deps.Ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(deps.Stderr, "Interrupted: checkpoint saved, rerun to resume")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d of %d links (%d degraded)\n", result.Processed, result.Links, result.Failed)
	fmt.Fprintf(deps.Stdout, "Saved %d records to %s\n", result.Records, c.OutputFile)
	return nil
}

// discoveryProgress renders listing-walk events as a single updating line.
func discoveryProgress(stdout, stderr io.Writer) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(stdout, "Discovering exhibitor links across %d listing pages\n", e.Total)
		case crawl.ProgressCompleted, crawl.ProgressFailed:
			if e.Error != nil {
				fmt.Fprintf(stderr, "skip %s: %v\n", e.URL, e.Error)
			}
			fmt.Fprintf(stdout, "\r[%d/%d] %s", e.Completed, e.Total, crawl.TruncateURL(e.URL, 60))
		case crawl.ProgressFinished:
			fmt.Fprintf(stdout, "\r%80s\r", "")
		}
	}
}

// scrapeProgress renders detail-scraping events as a single updating line.
func scrapeProgress(stdout, stderr io.Writer) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(stdout, "Scraping %d pending exhibitor pages\n", e.Total)
		case crawl.ProgressCompleted, crawl.ProgressFailed:
			if e.Error != nil {
				fmt.Fprintf(stderr, "degraded %s: %v\n", e.URL, e.Error)
			}
			fmt.Fprintf(stdout, "\r[%d/%d] %s", e.Completed, e.Total, crawl.TruncateURL(e.URL, 60))
		case crawl.ProgressCheckpoint:
			fmt.Fprintf(stdout, "\r%80s\r", "")
			fmt.Fprintf(stdout, "checkpoint: %d records saved\n", e.Completed)
		case crawl.ProgressRecovered:
			fmt.Fprintf(stderr, "warning: discarding unreadable progress file: %v\n", e.Error)
		case crawl.ProgressFinished:
			fmt.Fprintf(stdout, "\r%80s\r", "")
		}
	}
}
