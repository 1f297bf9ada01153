package search_test

import (
	"context"
	"strings"

	"github.com/fwojciec/cdpdoc/mock"
)

// domainWords are the substrings the concept embedder treats as CDP-related.
var domainWords = []string{
	"customer data platform", "cdp", "profile", "event", "track",
	"segment", "pipeline", "identity", "consent", "sync",
	"personalization", "integration", "source",
}

// conceptEmbedder maps in-domain text to [1 0] and everything else to [0 1].
// Blank text has no embedding.
func conceptEmbedder() *mock.Embedder {
	return &mock.Embedder{
		EmbedFn: func(_ context.Context, text string) ([]float32, error) {
			lower := strings.ToLower(text)
			if strings.TrimSpace(lower) == "" {
				return nil, nil
			}
			for _, w := range domainWords {
				if strings.Contains(lower, w) {
					return []float32{1, 0}, nil
				}
			}
			return []float32{0, 1}, nil
		},
	}
}
