package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/cdpdoc"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "gemini-embedding-001"

// DefaultRPS is the default request rate against the embeddings API.
const DefaultRPS = 5.0

// Ensure Embedder implements cdpdoc.Embedder at compile time.
var _ cdpdoc.Embedder = (*Embedder)(nil)

// Embedder implements cdpdoc.Embedder using Gemini embeddings.
type Embedder struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewEmbedder creates a new Embedder. Requests are limited to rps per
// second with no bursting.
func NewEmbedder(client *genai.Client, model string, rps float64) *Embedder {
	if model == "" {
		model = DefaultModel
	}
	if rps <= 0 {
		rps = DefaultRPS
	}
	return &Embedder{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Model returns the embedding model name.
func (e *Embedder) Model() string { return e.model }

// Embed returns the embedding for text. Blank text returns nil without
// calling the API.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if e.client == nil {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "gemini client required")
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), BuildConfig())
	if err != nil {
		return nil, cdpdoc.Errorf(cdpdoc.EUNAVAILABLE, "gemini embed: %v", err)
	}
	if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0] == nil {
		return nil, cdpdoc.Errorf(cdpdoc.EINTERNAL, "gemini returned no embedding")
	}

	return result.Embeddings[0].Values, nil
}

// BuildConfig returns the EmbedContentConfig for Gemini API calls.
func BuildConfig() *genai.EmbedContentConfig {
	return &genai.EmbedContentConfig{
		TaskType: "SEMANTIC_SIMILARITY",
	}
}
