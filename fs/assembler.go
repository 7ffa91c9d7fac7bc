// Package fs provides file-based assembly of the output document.
package fs

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/docgrab"
)

// timestampFormat is the human-readable crawl timestamp in the header.
const timestampFormat = "2006-01-02 15:04:05"

// rule separates sections in the output document.
var rule = strings.Repeat("=", 80)

// Ensure Assembler implements docgrab.DocumentAssembler at compile time.
var _ docgrab.DocumentAssembler = (*Assembler)(nil)

// Assembler accumulates extracted pages and writes them as one
// consolidated, timestamped document. Finalize rotates any pre-existing
// file at the output path to a .backup suffix, then writes the composed
// document atomically (temp file + rename).
type Assembler struct {
	path   string
	source string
	now    func() time.Time
	logger *slog.Logger

	mu    sync.Mutex
	pages []*docgrab.Page
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger for backup-rotation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// WithClock overrides the timestamp source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// NewAssembler creates an Assembler writing to path. The source string
// describes the seed in the document header ("explicit link list" or the
// crawl root URL).
func NewAssembler(path, source string, opts ...Option) *Assembler {
	a := &Assembler{
		path:   path,
		source: source,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// EnsureWritable verifies the output path can be written, so a bad path
// aborts the run before any page is fetched. It probes by creating and
// removing a temp file next to the output, leaving any existing output
// file and its backup untouched.
func EnsureWritable(path string) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return docgrab.Errorf(docgrab.EINVALID, "output path %q not writable: %v", path, err)
	}
	f.Close()
	_ = os.Remove(tmp)
	return nil
}

// Append records a page. Pages appear in the output in append order.
func (a *Assembler) Append(page *docgrab.Page) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pages = append(a.pages, page)
}

// Len returns the number of accumulated pages.
func (a *Assembler) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pages)
}

// Compose returns the full document text: a timestamped header followed
// by one delimited section per page.
func (a *Assembler) Compose() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var b strings.Builder
	b.WriteString("Documentation crawled on: ")
	b.WriteString(a.now().Format(timestampFormat))
	b.WriteString("\nSource: ")
	b.WriteString(a.source)
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n\n")

	for _, page := range a.pages {
		b.WriteString("\n")
		b.WriteString(rule)
		b.WriteString("\nPAGE: ")
		b.WriteString(page.Title)
		b.WriteString("\nURL: ")
		b.WriteString(page.URL)
		b.WriteString("\n")
		b.WriteString(rule)
		b.WriteString("\n\n")
		b.WriteString(page.Body)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Finalize writes the composed document to the output path. A
// pre-existing file is rotated to <path>.backup first; rotation failure
// is a warning, not an error, and the original is overwritten in place.
// Finalize ignores cancellation of ctx: a canceled run still writes the
// pages accumulated so far, so partial progress is never lost.
func (a *Assembler) Finalize(_ context.Context) error {
	a.rotateBackup()

	content := a.Compose()

	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, a.path)
}

// rotateBackup renames a pre-existing output file to its .backup path,
// replacing any backup from an earlier run.
func (a *Assembler) rotateBackup() {
	if _, err := os.Stat(a.path); err != nil {
		return
	}

	backup := a.path + ".backup"
	_ = os.Remove(backup)
	if err := os.Rename(a.path, backup); err != nil {
		a.logger.Warn("could not back up existing output", "path", a.path, "err", err)
	}
}
