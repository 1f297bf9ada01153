// Package search implements the question answering pipeline: the relevance
// gate, the two-stage ranker, and the Searcher that composes them over a
// corpus.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/cdpdoc"
)

// DefaultThreshold is the minimum topic similarity for a question to be
// considered in scope. It is calibrated for the subword embedder and must
// be re-validated when switching embedding backends.
const DefaultThreshold = 0.5

// Gate decides whether a question is about Customer Data Platforms.
// Topic embeddings are computed once by NewGate; a Gate is read-only
// afterwards and safe for concurrent use.
type Gate struct {
	embedder  cdpdoc.Embedder
	vocab     cdpdoc.Vocabulary
	topics    [][]float32
	threshold float64
}

// NewGate embeds the vocabulary's topic phrases with embedder.
func NewGate(ctx context.Context, embedder cdpdoc.Embedder, vocab cdpdoc.Vocabulary, threshold float64) (*Gate, error) {
	topics := make([][]float32, 0, len(vocab.Topics))
	for _, topic := range vocab.Topics {
		vec, err := embedder.Embed(ctx, strings.ToLower(topic))
		if err != nil {
			return nil, fmt.Errorf("embed topic %q: %w", topic, err)
		}
		topics = append(topics, vec)
	}
	return &Gate{
		embedder:  embedder,
		vocab:     vocab.Clone(),
		topics:    topics,
		threshold: threshold,
	}, nil
}

// Threshold returns the admission threshold.
func (g *Gate) Threshold() float64 { return g.threshold }

// IsRelevant reports whether question is in scope. A reject keyword always
// wins over semantic similarity; otherwise the question passes when its
// best topic similarity reaches the threshold.
func (g *Gate) IsRelevant(ctx context.Context, question string) (bool, error) {
	if g.vocab.Rejects(question) {
		return false, nil
	}
	score, err := g.Score(ctx, question)
	if err != nil {
		return false, err
	}
	return score >= g.threshold, nil
}

// Score returns the maximum similarity between the lowercased question and
// any topic phrase. A question without a computable embedding scores 0.
func (g *Gate) Score(ctx context.Context, question string) (float64, error) {
	vec, err := g.embedder.Embed(ctx, strings.ToLower(question))
	if err != nil {
		return 0, fmt.Errorf("embed question: %w", err)
	}
	best := 0.0
	for _, topic := range g.topics {
		best = max(best, cdpdoc.Cosine(vec, topic))
	}
	return best, nil
}
