package search_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/cdpdoc/mock"
	"github.com/fwojciec/cdpdoc/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanker_Rank(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("orders candidates by semantic similarity", func(t *testing.T) {
		t.Parallel()

		embedder := mock.VectorEmbedder(map[string][]float32{
			"create a source":            {1, 0},
			"Click Add Source to begin.": {0.2, 1},
			"Create a source in the UI.": {1, 0.1},
			"Select a destination.":      {0.5, 0.5},
		})
		r := search.NewRanker(embedder)

		got, err := r.Rank(ctx, "create a source", []string{
			"Click Add Source to begin.",
			"Create a source in the UI.",
			"Select a destination.",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Create a source in the UI.",
			"Select a destination.",
			"Click Add Source to begin.",
		}, got)
	})

	t.Run("returns at most Limit unique lines", func(t *testing.T) {
		t.Parallel()

		lines := make([]string, 0, 12)
		for i := range 6 {
			line := fmt.Sprintf("step %d: configure the source", i)
			lines = append(lines, line, line)
		}
		r := search.NewRanker(conceptEmbedder())

		got, err := r.Rank(ctx, "configure source", lines)

		require.NoError(t, err)
		assert.Len(t, got, search.DefaultLimit)
		seen := map[string]bool{}
		for _, line := range got {
			assert.False(t, seen[line], "duplicate %q", line)
			seen[line] = true
		}
	})

	t.Run("ties keep fuzzy order", func(t *testing.T) {
		t.Parallel()

		r := search.NewRanker(conceptEmbedder())
		lines := []string{
			"Select the source type.",
			"Create a source now.",
			"Click the source button.",
		}

		got, err := r.Rank(ctx, "create a source", lines)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Create a source now.", got[0])
	})

	t.Run("zero-magnitude candidates rank last", func(t *testing.T) {
		t.Parallel()

		embedder := mock.VectorEmbedder(map[string][]float32{
			"source":       {1, 0},
			"source setup": {0.3, 1},
			"source step":  {0, 0},
		})
		r := search.NewRanker(embedder)

		got, err := r.Rank(ctx, "source", []string{"source step", "source setup"})

		require.NoError(t, err)
		assert.Equal(t, []string{"source setup", "source step"}, got)
	})

	t.Run("only top candidates are embedded", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		embedder := &mock.Embedder{
			EmbedFn: func(context.Context, string) ([]float32, error) {
				calls.Add(1)
				return []float32{1}, nil
			},
		}
		lines := make([]string, 50)
		for i := range lines {
			lines[i] = fmt.Sprintf("line %d", i)
		}
		r := search.NewRanker(embedder)
		r.Candidates = 7
		r.Limit = 3

		got, err := r.Rank(ctx, "line", lines)

		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, int32(1+7), calls.Load())
	})

	t.Run("empty lines", func(t *testing.T) {
		t.Parallel()

		r := search.NewRanker(conceptEmbedder())

		got, err := r.Rank(ctx, "anything", nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query embedding error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		r := search.NewRanker(&mock.Embedder{
			EmbedFn: func(context.Context, string) ([]float32, error) { return nil, boom },
		})

		_, err := r.Rank(ctx, "q", []string{"a"})

		require.ErrorIs(t, err, boom)
	})

	t.Run("candidate embedding error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		r := search.NewRanker(&mock.Embedder{
			EmbedFn: func(_ context.Context, text string) ([]float32, error) {
				if text == "bad" {
					return nil, boom
				}
				return []float32{1}, nil
			},
		})

		_, err := r.Rank(ctx, "q", []string{"good", "bad"})

		require.ErrorIs(t, err, boom)
	})
}

func TestUnique(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		texts []string
		limit int
		want  []string
	}{
		{"keeps first occurrence", []string{"a", "b", "a", "c"}, 5, []string{"a", "b", "c"}},
		{"stops at limit", []string{"a", "b", "c", "d"}, 2, []string{"a", "b"}},
		{"duplicates do not count toward limit", []string{"a", "a", "a", "b"}, 2, []string{"a", "b"}},
		{"exact match only", []string{"A", "a", "a "}, 5, []string{"A", "a", "a "}},
		{"zero limit", []string{"a"}, 0, []string{}},
		{"empty input", nil, 5, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, search.Unique(tt.texts, tt.limit))
		})
	}
}
