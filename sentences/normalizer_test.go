package sentences_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/cdpdoc/sentences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNormalizer(t *testing.T) *sentences.Normalizer {
	t.Helper()

	n, err := sentences.NewNormalizer()
	require.NoError(t, err)
	return n
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n := newNormalizer(t)

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, n.Normalize(""))
		assert.Empty(t, n.Normalize("   \n\t"))
	})

	t.Run("single sentence is trimmed", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "How do I set up a source?", n.Normalize("  How do I set up a source?  "))
	})

	t.Run("joins sentences with single spaces", func(t *testing.T) {
		t.Parallel()

		result := n.Normalize("I use Segment.\n\nHow do I add a destination?")

		assert.Equal(t, "I use Segment. How do I add a destination?", result)
	})

	t.Run("truncates to max length", func(t *testing.T) {
		t.Parallel()

		result := n.Normalize(strings.Repeat("word ", 200))

		assert.Equal(t, sentences.MaxLength, utf8.RuneCountInString(result))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", sentences.Truncate("abcdef", 3))
	assert.Equal(t, "abc", sentences.Truncate("abc", 10))
	assert.Equal(t, "héé", sentences.Truncate("héééé", 3))
	assert.Empty(t, sentences.Truncate("abc", 0))
}
