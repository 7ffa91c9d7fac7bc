package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/crawl"
	"github.com/fwojciec/docgrab/fs"
	docgoquery "github.com/fwojciec/docgrab/goquery"
	dochttp "github.com/fwojciec/docgrab/http"
	docslog "github.com/fwojciec/docgrab/slog"
	"github.com/fwojciec/docgrab/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
		kong.Name("docgrab"),
		kong.Description("Crawl a documentation site into a single plain-text file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := cli.validate(); err != nil {
		return err
	}

	return m.run(ctx, cli, stdout, stderr)
}

// run wires the crawl dependencies and executes one run.
func (m *Main) run(ctx context.Context, cli *CLI, stdout, stderr io.Writer) error {
	// Warnings always reach stderr; --verbose adds the per-fetch Info
	// decorators.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// An unwritable output path is a configuration failure: abort before
	// any fetch rather than after a full crawl.
	if err := fs.EnsureWritable(cli.Output); err != nil {
		return err
	}

	var fetcher docgrab.Fetcher = dochttp.NewFetcher(dochttp.WithTimeout(cli.Timeout))
	if cli.Verbose {
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	links := cli.Link
	if cli.Sitemap {
		var sitemaps docgrab.SitemapService = dochttp.NewSitemapService(nil)
		if cli.Verbose {
			sitemaps = docslog.NewLoggingSitemapService(sitemaps, logger)
		}
		discovered, err := sitemaps.DiscoverLinks(ctx, cli.URL)
		if err != nil {
			return fmt.Errorf("sitemap discovery failed: %w", err)
		}
		if len(discovered) == 0 {
			return fmt.Errorf("no URLs discovered in sitemaps for %s", cli.URL)
		}
		links = discovered
	}

	var extractor docgrab.Extractor
	if cli.Auto {
		extractor = trafilatura.NewExtractor()
	} else {
		extractor = docgoquery.NewExtractor(cli.Selector)
	}

	seed := &docgrab.Seed{
		RootURL:    cli.URL,
		Links:      links,
		Selector:   cli.Selector,
		MaxPages:   cli.MaxPages,
		OutputPath: cli.Output,
		Delay:      cli.Delay,
	}

	assembler := fs.NewAssembler(seed.OutputPath, seed.SourceDescription(), fs.WithLogger(logger))

	crawler := &crawl.Crawler{
		Fetcher:   fetcher,
		Extractor: extractor,
		Links:     docgoquery.NewLinkExtractor(),
		Limiter:   crawl.NewDomainLimiter(seed.Delay),
	}

	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(stdout, "[%d] %s\n", e.Completed, crawl.TruncateURL(e.URL, 60))
		case crawl.ProgressFailed:
			fmt.Fprintf(stderr, "fail %s: %v\n", e.URL, e.Error)
		}
	}

	result, err := crawler.Run(ctx, seed, assembler, progress)
	if err != nil {
		return err
	}

	// The document is written even when the run was interrupted, so
	// partial progress survives.
	if err := assembler.Finalize(ctx); err != nil {
		return err
	}

	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "interrupted; partial document written")
	}

	fmt.Fprintf(stdout, "Saved %d pages (%s) to %s\n",
		result.Processed, crawl.FormatBytes(result.Bytes), seed.OutputPath)
	if result.Skipped > 0 || result.Failed > 0 {
		fmt.Fprintf(stdout, "Skipped %d, failed %d\n", result.Skipped, result.Failed)
	}

	return nil
}
