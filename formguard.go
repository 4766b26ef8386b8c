package formguard

import (
	"context"
	"io"

	"github.com/goliatone/go-formguard/pkg/document"
	"github.com/goliatone/go-formguard/pkg/guard"
)

// Snapshot aliases guard.Snapshot for callers using the top-level package.
type Snapshot = guard.Snapshot

// Option aliases guard.Option.
type Option = guard.Option

// Validate exposes the pure submission rule from the top-level module.
func Validate(name, email, rating string) bool {
	return guard.Validate(name, email, rating)
}

// New exposes the guard constructor from the top-level module.
func New(options ...Option) *guard.Guard {
	return guard.New(options...)
}

// CheckHTML parses an HTML page and runs the guard over its name, email, and
// rating controls. It is the simplest entry point for callers holding markup.
func CheckHTML(ctx context.Context, page io.Reader, options ...Option) (bool, error) {
	doc, err := document.Parse(page)
	if err != nil {
		return false, err
	}
	return guard.New(options...).Check(ctx, doc)
}

// CheckValues runs the guard over values that were already extracted.
func CheckValues(ctx context.Context, name, email, rating string, options ...Option) (bool, error) {
	return guard.New(options...).Check(ctx, document.FeedbackValues(name, email, rating))
}
