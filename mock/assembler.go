package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.DocumentAssembler = (*Assembler)(nil)

// Assembler is a mock implementation of docgrab.DocumentAssembler that
// records appended pages in order.
type Assembler struct {
	FinalizeFn func(ctx context.Context) error

	mu    sync.Mutex
	pages []*docgrab.Page
}

func (a *Assembler) Append(page *docgrab.Page) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pages = append(a.pages, page)
}

func (a *Assembler) Finalize(ctx context.Context) error {
	if a.FinalizeFn == nil {
		return nil
	}
	return a.FinalizeFn(ctx)
}

// Pages returns the appended pages in append order.
func (a *Assembler) Pages() []*docgrab.Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*docgrab.Page(nil), a.pages...)
}
