package mock

import (
	"context"

	"github.com/fwojciec/cdpdoc"
)

var _ cdpdoc.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of cdpdoc.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

// VectorEmbedder returns an Embedder that looks text up in vectors and
// returns nil for anything missing.
func VectorEmbedder(vectors map[string][]float32) *Embedder {
	return &Embedder{
		EmbedFn: func(_ context.Context, text string) ([]float32, error) {
			return vectors[text], nil
		},
	}
}

var _ cdpdoc.EmbeddingCache = (*EmbeddingCache)(nil)

// EmbeddingCache is a mock implementation of cdpdoc.EmbeddingCache.
type EmbeddingCache struct {
	FindEmbeddingFn func(ctx context.Context, model, text string) ([]float32, error)
	SaveEmbeddingFn func(ctx context.Context, model, text string, vec []float32) error
}

func (c *EmbeddingCache) FindEmbedding(ctx context.Context, model, text string) ([]float32, error) {
	return c.FindEmbeddingFn(ctx, model, text)
}

func (c *EmbeddingCache) SaveEmbedding(ctx context.Context, model, text string, vec []float32) error {
	return c.SaveEmbeddingFn(ctx, model, text, vec)
}
