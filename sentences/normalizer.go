// Package sentences normalizes questions using the neurosnap/sentences
// Punkt sentence tokenizer.
package sentences

import (
	"strings"

	"github.com/fwojciec/cdpdoc"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// MaxLength is the maximum number of characters a normalized question keeps.
const MaxLength = 300

// Ensure Normalizer implements cdpdoc.Normalizer at compile time.
var _ cdpdoc.Normalizer = (*Normalizer)(nil)

// Normalizer splits text into sentences, rejoins them with single spaces,
// and truncates the result to MaxLength characters.
// It holds only the read-only tokenizer model and is safe for concurrent use.
type Normalizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewNormalizer loads the English sentence model.
func NewNormalizer() (*Normalizer, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, cdpdoc.Errorf(cdpdoc.EINTERNAL, "load sentence model: %v", err)
	}
	return &Normalizer{tokenizer: tokenizer}, nil
}

// Normalize returns text as space-joined sentences of at most MaxLength characters.
func (n *Normalizer) Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var parts []string
	for _, s := range n.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}

	return Truncate(strings.Join(parts, " "), MaxLength)
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
