package mock

import (
	"context"

	"github.com/fwojciec/cdpdoc"
)

var _ cdpdoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of cdpdoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, cdp cdpdoc.CDP, question string) (*cdpdoc.Result, error)
}

func (s *Searcher) Search(ctx context.Context, cdp cdpdoc.CDP, question string) (*cdpdoc.Result, error) {
	return s.SearchFn(ctx, cdp, question)
}

var _ cdpdoc.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of cdpdoc.Normalizer.
type Normalizer struct {
	NormalizeFn func(text string) string
}

func (n *Normalizer) Normalize(text string) string {
	return n.NormalizeFn(text)
}

// IdentityNormalizer returns a Normalizer that returns its input unchanged.
func IdentityNormalizer() *Normalizer {
	return &Normalizer{NormalizeFn: func(text string) string { return text }}
}
