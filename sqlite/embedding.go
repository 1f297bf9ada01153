package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cdpdoc"
)

// Compile-time interface verification.
var _ cdpdoc.EmbeddingCache = (*EmbeddingCache)(nil)

// EmbeddingCache implements cdpdoc.EmbeddingCache using SQLite.
// Rows are keyed by model and an xxHash of the text; the text itself is
// stored and compared so hash collisions can never return a wrong vector.
type EmbeddingCache struct {
	db *DB
}

// NewEmbeddingCache creates a new EmbeddingCache.
func NewEmbeddingCache(db *DB) *EmbeddingCache {
	return &EmbeddingCache{db: db}
}

// hashText computes xxHash of text and returns a hex string.
func hashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// FindEmbedding returns the cached vector for text under model.
func (c *EmbeddingCache) FindEmbedding(ctx context.Context, model, text string) ([]float32, error) {
	var blob []byte
	var dims int

	err := c.db.QueryRowContext(ctx, `
		SELECT dims, vector
		FROM embeddings
		WHERE model = ? AND text_hash = ? AND text = ?
	`, model, hashText(text), text).Scan(&dims, &blob)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, cdpdoc.Errorf(cdpdoc.ENOTFOUND, "embedding not found")
	}
	if err != nil {
		return nil, err
	}

	vec, err := decodeVector(blob)
	if err != nil {
		return nil, err
	}
	if len(vec) != dims {
		return nil, fmt.Errorf("embedding has %d dims, want %d", len(vec), dims)
	}
	return vec, nil
}

// SaveEmbedding stores vec for text under model, replacing any previous vector.
func (c *EmbeddingCache) SaveEmbedding(ctx context.Context, model, text string, vec []float32) error {
	if model == "" {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "embedding model required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO embeddings (model, text_hash, text, dims, vector, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (model, text_hash, text) DO UPDATE
		SET dims = excluded.dims, vector = excluded.vector, created_at = excluded.created_at
	`, model, hashText(text), text, len(vec), encodeVector(vec), time.Now().UTC().Format(time.RFC3339))

	return err
}

// CountEmbeddings returns the number of cached vectors for model.
func (c *EmbeddingCache) CountEmbeddings(ctx context.Context, model string) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM embeddings WHERE model = ?", model).Scan(&n)
	return n, err
}

// encodeVector packs vec as little-endian float32 values.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 0, 4*len(vec))
	for _, v := range vec {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

func decodeVector(buf []byte) ([]float32, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d", len(buf))
	}
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vec, nil
}

// Ensure CachedEmbedder implements cdpdoc.Embedder at compile time.
var _ cdpdoc.Embedder = (*CachedEmbedder)(nil)

// CachedEmbedder serves embeddings from a cache and falls back to the
// wrapped embedder on a miss, saving the fresh vector.
type CachedEmbedder struct {
	embedder cdpdoc.Embedder
	cache    cdpdoc.EmbeddingCache
	model    string
}

// NewCachedEmbedder wraps embedder. model namespaces the cached vectors so
// switching backends never mixes vector spaces.
func NewCachedEmbedder(embedder cdpdoc.Embedder, cache cdpdoc.EmbeddingCache, model string) *CachedEmbedder {
	return &CachedEmbedder{embedder: embedder, cache: cache, model: model}
}

func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.cache.FindEmbedding(ctx, e.model, text)
	if err == nil {
		return vec, nil
	}
	if cdpdoc.ErrorCode(err) != cdpdoc.ENOTFOUND {
		return nil, fmt.Errorf("read embedding cache: %w", err)
	}

	vec, err = e.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	// Texts without an embedding are not cached.
	if len(vec) == 0 {
		return vec, nil
	}
	if err := e.cache.SaveEmbedding(ctx, e.model, text, vec); err != nil {
		return nil, fmt.Errorf("write embedding cache: %w", err)
	}
	return vec, nil
}
