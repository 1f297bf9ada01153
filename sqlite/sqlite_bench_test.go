package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cdpdoc/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkEmbeddingCache measures cache writes and hits for a corpus-sized
// batch of 512-dimensional vectors.
func BenchmarkEmbeddingCache(b *testing.B) {
	dbPath := filepath.Join(b.TempDir(), "bench.db")
	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())
	defer db.Close()

	cache := sqlite.NewEmbeddingCache(db)
	ctx := context.Background()
	vec := make([]float32, 512)
	for i := range vec {
		vec[i] = float32(i) / 512
	}

	b.Run("save", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			text := fmt.Sprintf("Step %d: click Add Source and select a source type.", i)
			if err := cache.SaveEmbedding(ctx, "bench", text, vec); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("find", func(b *testing.B) {
		const text = "Go to Connections and select Sources."
		require.NoError(b, cache.SaveEmbedding(ctx, "bench", text, vec))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := cache.FindEmbedding(ctx, "bench", text); err != nil {
				b.Fatal(err)
			}
		}
	})
}
