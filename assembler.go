package docgrab

import "context"

// DocumentAssembler accumulates extracted pages and writes the consolidated
// output document.
type DocumentAssembler interface {
	// Append records a page. Pages appear in the output in append order.
	Append(page *Page)

	// Finalize composes and writes the output document, rotating any
	// pre-existing file at the output path to a .backup suffix first.
	// It must be called even after a canceled run so that partial
	// results are not lost.
	Finalize(ctx context.Context) error
}
