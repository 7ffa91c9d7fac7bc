// Package crawl provides the frontier traversal engine: it drives repeated
// fetch and extract cycles over a documentation site, discovers same-site
// links in open-crawl mode, enforces the page budget, and applies a polite
// delay between fetches.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docgrab"
	"github.com/google/uuid"
)

// State describes where a Crawler is in its lifecycle.
type State int

// Crawler lifecycle states.
const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	// ProgressStarted is emitted once, before the first fetch.
	ProgressStarted ProgressType = iota
	// ProgressCompleted is emitted for each successfully extracted page.
	ProgressCompleted
	// ProgressSkipped is emitted for pages with no content region or
	// with content identical to an already-extracted page.
	ProgressSkipped
	// ProgressFailed is emitted when a page cannot be fetched or
	// extracted. Failures never abort the run.
	ProgressFailed
	// ProgressFinished is emitted once, after the run terminates.
	ProgressFinished
)

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Completed int
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawler traverses a documentation site and streams extracted pages into
// a document assembler. The frontier and visited sets are owned by the
// run; there is no process-wide crawl state.
type Crawler struct {
	Fetcher   docgrab.Fetcher
	Extractor docgrab.Extractor

	// Links supplies link discovery for open-crawl mode. Unused in
	// closed-list mode.
	Links docgrab.LinkExtractor

	// Limiter applies the polite delay between fetches. Nil disables
	// the delay.
	Limiter docgrab.DomainLimiter

	// RetryDelays overrides the fetch retry backoff.
	// Nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	mu    sync.Mutex
	state State
}

// Result holds the outcome of a crawl run.
type Result struct {
	// RunID uniquely identifies the run in diagnostics.
	RunID string

	// Processed counts successfully extracted pages. Only these count
	// toward the seed's page budget.
	Processed int

	// Skipped counts pages with no content region or duplicate content.
	Skipped int

	// Failed counts pages abandoned after fetch or extraction errors.
	Failed int

	// Bytes is the total size of extracted page bodies.
	Bytes int
}

// State returns the crawler's lifecycle state.
func (c *Crawler) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Crawler) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Run executes one crawl described by the seed, appending each extracted
// page to out in extraction order. Per-page failures are isolated: a fetch
// or extraction error abandons that page and traversal continues. The run
// terminates when the frontier is empty, when the page budget is reached,
// or when ctx is canceled; all three leave the pages accumulated so far in
// out, so a finalized document preserves partial progress.
func (c *Crawler) Run(ctx context.Context, seed *docgrab.Seed, out docgrab.DocumentAssembler, progress ProgressFunc) (*Result, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	seedURLs, err := seed.SeedURLs()
	if err != nil {
		return nil, err
	}

	frontier := NewFrontier()
	for _, u := range seedURLs {
		frontier.Push(u)
	}

	c.setState(StateRunning)
	defer c.setState(StateCompleted)

	result := &Result{RunID: uuid.NewString()}
	seenHashes := make(map[string]struct{})
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	notify(progress, ProgressEvent{Type: ProgressStarted})

	for seed.MaxPages == 0 || result.Processed < seed.MaxPages {
		if ctx.Err() != nil {
			break // canceled; keep partial progress
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break // natural exhaustion
		}

		// Defensive: the frontier never queues a visited URL, but a
		// concurrent variant of this loop could race here.
		if frontier.Visited(pageURL) {
			continue
		}
		frontier.MarkVisited(pageURL)

		if err := c.wait(ctx, pageURL); err != nil {
			break
		}

		html, err := fetchWithRetry(ctx, pageURL, c.Fetcher.Fetch, delays)
		if err != nil {
			result.Failed++
			notify(progress, ProgressEvent{
				Type:      ProgressFailed,
				URL:       pageURL,
				Completed: result.Processed,
				Error:     err,
			})
			continue
		}

		page, err := c.Extractor.Extract(html, pageURL)
		switch {
		case err == nil:
			page.ContentHash = contentHash(page.Body)
			if _, dup := seenHashes[page.ContentHash]; dup {
				result.Skipped++
				notify(progress, ProgressEvent{
					Type:      ProgressSkipped,
					URL:       pageURL,
					Completed: result.Processed,
				})
			} else {
				seenHashes[page.ContentHash] = struct{}{}
				out.Append(page)
				result.Processed++
				result.Bytes += len(page.Body)
				notify(progress, ProgressEvent{
					Type:      ProgressCompleted,
					URL:       pageURL,
					Completed: result.Processed,
				})
			}
		case docgrab.ErrorCode(err) == docgrab.ENOTFOUND:
			// Not every discovered link is a documentation page.
			result.Skipped++
			notify(progress, ProgressEvent{
				Type:      ProgressSkipped,
				URL:       pageURL,
				Completed: result.Processed,
			})
		default:
			result.Failed++
			notify(progress, ProgressEvent{
				Type:      ProgressFailed,
				URL:       pageURL,
				Completed: result.Processed,
				Error:     err,
			})
		}

		if !seed.ClosedList() && c.Links != nil {
			c.discover(frontier, html, pageURL, seed.RootURL)
		}
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: result.Processed})

	return result, nil
}

// discover extracts links from an already-fetched page and enqueues those
// within the seed root's URL prefix. Enqueueing is best-effort: a page
// whose links cannot be parsed simply contributes none.
func (c *Crawler) discover(frontier *Frontier, html, pageURL, rootURL string) {
	links, err := c.Links.ExtractLinks(html, pageURL)
	if err != nil {
		return
	}
	for _, link := range links {
		if strings.HasPrefix(link, rootURL) {
			frontier.Push(link)
		}
	}
}

// wait applies the polite delay for the URL's domain.
func (c *Crawler) wait(ctx context.Context, pageURL string) error {
	if c.Limiter == nil {
		return ctx.Err()
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return ctx.Err()
	}
	return c.Limiter.Wait(ctx, u.Host)
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
