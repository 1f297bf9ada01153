package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/fwojciec/cdpdoc"
	"github.com/fwojciec/cdpdoc/fuzzy"
	"golang.org/x/sync/errgroup"
)

// Ranker defaults.
const (
	DefaultCandidates  = 20
	DefaultLimit       = 5
	DefaultConcurrency = 4
)

// Ranker orders corpus lines by relevance to a question in two stages:
// fuzzy string matching narrows the lines to a few candidates, which are
// then re-ranked by embedding similarity.
type Ranker struct {
	Embedder cdpdoc.Embedder

	// Number of fuzzy candidates kept for semantic re-ranking.
	Candidates int

	// Maximum number of lines returned.
	Limit int

	// Maximum concurrent candidate embeddings.
	Concurrency int
}

// NewRanker creates a Ranker with default limits.
func NewRanker(embedder cdpdoc.Embedder) *Ranker {
	return &Ranker{
		Embedder:    embedder,
		Candidates:  DefaultCandidates,
		Limit:       DefaultLimit,
		Concurrency: DefaultConcurrency,
	}
}

type scored struct {
	text  string
	score float64
}

// Rank returns at most Limit unique lines, most relevant first.
func (r *Ranker) Rank(ctx context.Context, query string, lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	matches := fuzzy.Extract(query, lines, r.Candidates)

	queryVec, err := r.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	candidates := make([]scored, len(matches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Concurrency, 1))
	for i, m := range matches {
		g.Go(func() error {
			vec, err := r.Embedder.Embed(gctx, m.Text)
			if err != nil {
				return fmt.Errorf("embed candidate: %w", err)
			}
			// Cosine treats a zero-magnitude candidate as similarity 0.
			candidates[i] = scored{text: m.Text, score: cdpdoc.Cosine(queryVec, vec)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.text
	}
	return Unique(texts, r.Limit), nil
}

// Unique returns texts in order with exact duplicates removed, stopping
// after limit entries.
func Unique(texts []string, limit int) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, min(len(texts), max(limit, 0)))
	for _, text := range texts {
		if len(out) >= limit {
			break
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}
	return out
}
