// Package subword provides an offline embedder that hashes words and their
// character n-grams into a fixed-size vector, so related word forms such as
// "profile" and "profiles" land close together without a trained model.
//
// Hashed n-grams alone score natural questions such as "How do I set up a
// new source in Segment?" far below 0.5 against the topic phrases, so the
// last dimension is reserved for a domain feature. It fires when any word
// starts with a CDP vocabulary stem and carries DomainWeight of the squared
// norm. Two texts that both mention the domain therefore score at least
// DomainWeight minus a small lexical term, and a text without domain words
// scores at most sqrt(1-DomainWeight) times its lexical similarity.
package subword

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cdpdoc"
)

// Defaults for NewEmbedder.
const (
	DefaultDimension = 512
	DefaultMinN      = 3
	DefaultMaxN      = 5

	// DomainWeight is the share of a vector's squared norm given to the
	// domain feature when the text contains a domain word.
	DomainWeight = 0.65
)

// Model is the cache key for vectors produced by this package.
const Model = "subword-v2"

// Ensure Embedder implements cdpdoc.Embedder at compile time.
var _ cdpdoc.Embedder = (*Embedder)(nil)

// Embedder maps text to the L2-normalized mean of its word vectors, plus
// the domain feature in the last dimension. Each word vector is the
// normalized sum of signed hash buckets for the word itself and its
// character n-grams. Stopwords are skipped; text with no remaining words
// embeds to the zero vector.
type Embedder struct {
	dim          int
	minN, maxN   int
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
	domainStems  []string
}

// NewEmbedder creates an Embedder with the default dimension and n-gram range.
func NewEmbedder() *Embedder {
	return &Embedder{
		dim:          DefaultDimension,
		minN:         DefaultMinN,
		maxN:         DefaultMaxN,
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*`),
		stopwords:    defaultStopwords(),
		domainStems:  defaultDomainStems(),
	}
}

// Dimension returns the length of produced vectors.
func (e *Embedder) Dimension() int { return e.dim }

// Embed returns the vector for text. It never fails.
func (e *Embedder) Embed(_ context.Context, text string) ([]float32, error) {
	lexical := make([]float64, e.buckets())
	words := 0
	domain := false
	for _, tok := range e.tokenize(text) {
		wv := e.wordVector(tok)
		for i, v := range wv {
			lexical[i] += v
		}
		words++
		domain = domain || e.isDomainWord(tok)
	}

	out := make([]float32, e.dim)
	if words == 0 {
		return out, nil
	}
	normalize(lexical)

	scale := 1.0
	if domain {
		scale = math.Sqrt(1 - DomainWeight)
		out[e.dim-1] = float32(math.Sqrt(DomainWeight))
	}
	for i, v := range lexical {
		out[i] = float32(v * scale)
	}
	return out, nil
}

// IsDomainWord reports whether word starts with a CDP vocabulary stem.
func (e *Embedder) IsDomainWord(word string) bool {
	return e.isDomainWord(strings.ToLower(word))
}

func (e *Embedder) isDomainWord(word string) bool {
	for _, stem := range e.domainStems {
		// Short stems are acronyms and must match exactly.
		if len(stem) <= 3 {
			if word == stem {
				return true
			}
			continue
		}
		if strings.HasPrefix(word, stem) {
			return true
		}
	}
	return false
}

// buckets is the number of dimensions available to hashed features.
func (e *Embedder) buckets() int { return e.dim - 1 }

func (e *Embedder) wordVector(word string) []float64 {
	vec := make([]float64, e.buckets())
	e.add(vec, "w:"+word, 1.0)

	runes := []rune("<" + word + ">")
	for n := e.minN; n <= e.maxN; n++ {
		for i := 0; i+n <= len(runes); i++ {
			e.add(vec, string(runes[i:i+n]), 1.0)
		}
	}
	normalize(vec)
	return vec
}

// add hashes feature into a bucket with a sign taken from a high bit,
// which keeps collisions from biasing unrelated words toward each other.
func (e *Embedder) add(vec []float64, feature string, weight float64) {
	h := xxhash.Sum64String(feature)
	idx := int(h % uint64(len(vec)))
	if h>>63 == 1 {
		weight = -weight
	}
	vec[idx] += weight
}

func (e *Embedder) tokenize(text string) []string {
	raw := e.tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := e.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func normalize(vec []float64) {
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
		"i", "me", "my", "we", "our", "you", "your", "how", "what", "which", "who", "do", "does", "did",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// defaultDomainStems lists word prefixes that place a text in the CDP
// domain. Every topic phrase contains at least one of them.
func defaultDomainStems() []string {
	return []string{
		"cdp", "sdk",
		"segment", "mparticle", "lytics", "zeotap",
		"customer", "audienc", "profil", "identit", "consent",
		"track", "event", "source", "destination", "pipelin",
		"integrat", "sync", "personaliz", "personalis",
		"warehous", "enrich", "analytic", "attribut", "trait", "webhook",
	}
}
