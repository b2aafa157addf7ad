package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sutaryash32/expodex"
	"github.com/sutaryash32/expodex/crawl"
	"github.com/sutaryash32/expodex/csv"
	"github.com/sutaryash32/expodex/fs"
	"github.com/sutaryash32/expodex/goquery"
	"github.com/sutaryash32/expodex/rod"
	expslog "github.com/sutaryash32/expodex/slog"
	"github.com/sutaryash32/expodex/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("expodex"),
		kong.Description("Crawl a trade-show exhibitor gallery into a resumable CSV directory"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Validate before anything launches
	if cli.Pages <= 0 {
		return fmt.Errorf("pages must be positive, got %d", cli.Pages)
	}
	if cli.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cli.Timeout)
	}

	origin := cli.SiteOrigin
	if origin == "" {
		base, err := url.Parse(cli.BaseURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return fmt.Errorf("cannot derive site origin from base url %q", cli.BaseURL)
		}
		origin = base.Scheme + "://" + base.Host
	}

	extractor, err := goquery.NewExtractor(origin)
	if err != nil {
		return err
	}

	concurrency := cli.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	fetcher, err := rod.NewFetcher(
		rod.WithFetchTimeout(cli.Timeout),
		rod.WithRenderDelay(cli.RenderDelay),
		rod.WithHeadless(!cli.Headful),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()

	// Wire stores
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var fetchSvc expodex.Fetcher = fetcher
	var linkStore expodex.LinkStore = fs.NewLinkStore(cli.LinksFile)
	var progressStore expodex.ProgressStore = csv.NewProgressStore(cli.ProgressFile, cli.OutputFile)

	var archive expodex.Archive
	if cli.ArchiveDB != "" {
		db := sqlite.NewDB(cli.ArchiveDB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open archive database: %w", err)
		}
		defer db.Close()
		archive = sqlite.NewArchive(db)
	}

	if cli.Verbose {
		fetchSvc = rod.NewLoggingFetcher(fetcher, logger)
		linkStore = expslog.NewLoggingLinkStore(linkStore, logger)
		progressStore = expslog.NewLoggingProgressStore(progressStore, logger)
		if archive != nil {
			archive = expslog.NewLoggingArchive(archive, logger)
		}
	}

	// Wire the listing walker
	var collector expodex.Collector = &crawl.Collector{
		Fetcher:    fetchSvc,
		Selector:   goquery.NewLinkSelector(),
		Limiter:    crawl.NewThrottle(cli.ListingDelay),
		BaseURL:    cli.BaseURL,
		TotalPages: cli.Pages,
		OnProgress: discoveryProgress(stdout, stderr),
	}
	if cli.Verbose {
		collector = expslog.NewLoggingCollector(collector, logger)
	}

	runner := &crawl.Runner{
		Fetcher:         fetchSvc,
		Extractor:       extractor,
		Collector:       collector,
		Links:           linkStore,
		Progress:        progressStore,
		Archive:         archive,
		Limiter:         crawl.NewThrottle(cli.DetailDelay),
		CheckpointEvery: cli.CheckpointEvery,
		Concurrency:     concurrency,
		Rediscover:      cli.Rediscover,
		OnProgress:      scrapeProgress(stdout, stderr),
	}

	// Create and run the crawl command
	cmd := &RunCmd{
		OutputFile: cli.OutputFile,
	}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Runner: runner,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL         string        `default:"https://re25.mapyourshow.com/8_0/explore/exhibitor-gallery.cfm" help:"Exhibitor gallery URL to crawl"`
	Pages           int           `default:"53" help:"Number of listing pages in the gallery"`
	SiteOrigin      string        `help:"Origin for resolving relative links (derived from the gallery URL when empty)"`
	Timeout         time.Duration `short:"t" default:"15s" help:"Fetch timeout per page"`
	RenderDelay     time.Duration `default:"2s" help:"Settle time after a page reports ready"`
	ListingDelay    time.Duration `default:"1s" help:"Pause between listing page fetches"`
	DetailDelay     time.Duration `default:"500ms" help:"Pause between detail page fetches"`
	Concurrency     int           `short:"c" default:"1" help:"Concurrent detail fetch limit"`
	CheckpointEvery int           `default:"10" help:"Records between progress checkpoints"`
	LinksFile       string        `default:"exhibitor_links.txt" help:"Link cache file"`
	ProgressFile    string        `default:"re25_exhibitors_progress.csv" help:"Checkpoint file for resumable runs"`
	OutputFile      string        `short:"o" default:"re25_exhibitors_complete.csv" help:"Final CSV output file"`
	ArchiveDB       string        `help:"Optional SQLite database for raw page snapshots"`
	Rediscover      bool          `help:"Ignore the link cache and walk the gallery again"`
	Headful         bool          `help:"Run the browser with a visible window"`
	Verbose         bool          `short:"v" help:"Log every fetch and store operation"`
}
