package main

import (
	"context"
	"io"

	"github.com/sutaryash32/expodex/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Runner *crawl.Runner
}

// RunCmd handles the full crawl: discover links, scrape details, checkpoint
// along the way, and write the final directory.
type RunCmd struct {
	OutputFile string
}
