package cdpdoc

import (
	"context"
	"math"
)

// Embedder converts text into a dense vector capturing its meaning.
// Text with no computable embedding yields a zero-magnitude vector
// (or nil), never an error.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingCache stores vectors produced by a named embedding model.
type EmbeddingCache interface {
	// FindEmbedding returns the cached vector for text.
	// Returns ENOTFOUND if nothing is cached.
	FindEmbedding(ctx context.Context, model, text string) ([]float32, error)

	// SaveEmbedding stores the vector for text, replacing any previous one.
	SaveEmbedding(ctx context.Context, model, text string, vec []float32) error
}

// Cosine returns the cosine similarity of a and b clamped to [0, 1].
// Mismatched lengths or a zero-magnitude vector yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return min(max(sim, 0), 1)
}

// Magnitude returns the L2 norm of v.
func Magnitude(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
