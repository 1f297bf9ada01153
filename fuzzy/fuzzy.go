// Package fuzzy provides approximate string matching scores in the style
// of fuzzywuzzy, built on Levenshtein edit distance.
//
// All scores are integers in [0, 100]. Inputs are normalized by Process
// before scoring: lowercased, non-alphanumerics replaced by spaces.
package fuzzy

import (
	"math"
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Process lowercases s, replaces every rune that is not a letter or digit
// with a space, and trims the ends.
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.TrimSpace(mapped)
}

// Ratio scores the edit similarity of a and b as a whole.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	longest := max(len(ra), len(rb))
	return round(100 * (1 - float64(dist)/float64(longest)))
}

// PartialRatio scores the best match of the shorter string against
// equal-length windows of the longer one. Windows start at word
// boundaries of the longer string.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}
	if len(short) == len(long) {
		return Ratio(a, b)
	}

	s := string(short)
	best := 0
	for _, start := range windowStarts(long, len(short)) {
		score := Ratio(s, string(long[start:start+len(short)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// windowStarts returns the word-start offsets in long at which a window of
// size n fits, always including the final window.
func windowStarts(long []rune, n int) []int {
	last := len(long) - n
	starts := []int{0}
	for i := 1; i <= last; i++ {
		if long[i-1] == ' ' && long[i] != ' ' {
			starts = append(starts, i)
		}
	}
	if starts[len(starts)-1] != last {
		starts = append(starts, last)
	}
	return starts
}

// TokenSortRatio compares a and b after sorting their words.
func TokenSortRatio(a, b string) int {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// PartialTokenSortRatio is PartialRatio over sorted words.
func PartialTokenSortRatio(a, b string) int {
	return PartialRatio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio compares the shared words of a and b against each side's
// remainder, so extra words on one side cost little.
func TokenSetRatio(a, b string) int {
	return tokenSet(a, b, Ratio)
}

// PartialTokenSetRatio is TokenSetRatio using PartialRatio.
func PartialTokenSetRatio(a, b string) int {
	return tokenSet(a, b, PartialRatio)
}

func tokenSet(a, b string, score func(string, string) int) int {
	ta, tb := tokenSetOf(a), tokenSetOf(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var inter, diffA, diffB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	if base != "" && (len(diffA) == 0 || len(diffB) == 0) {
		return 100
	}

	return max(
		score(base, combinedA),
		score(base, combinedB),
		score(combinedA, combinedB),
	)
}

// WRatio is the weighted blend of the other scorers used by Extract.
// Similar-length strings are compared whole; when one string is much
// longer, partial scorers dominate with a penalty.
func WRatio(a, b string) int {
	pa, pb := Process(a), Process(b)
	if pa == "" || pb == "" {
		return 0
	}

	la, lb := float64(len([]rune(pa))), float64(len([]rune(pb)))
	lenRatio := max(la, lb) / min(la, lb)

	const unbaseScale = 0.95
	base := float64(Ratio(pa, pb))

	if lenRatio < 1.5 {
		tsor := float64(TokenSortRatio(pa, pb)) * unbaseScale
		tser := float64(TokenSetRatio(pa, pb)) * unbaseScale
		return round(max(base, tsor, tser))
	}

	partialScale := 0.9
	if lenRatio > 8 {
		partialScale = 0.6
	}
	partial := float64(PartialRatio(pa, pb)) * partialScale
	ptsor := float64(PartialTokenSortRatio(pa, pb)) * unbaseScale * partialScale
	ptser := float64(PartialTokenSetRatio(pa, pb)) * unbaseScale * partialScale
	return round(max(base, partial, ptsor, ptser))
}

// Match is a choice paired with its score against the query.
type Match struct {
	Text  string
	Score int
	Index int
}

// Extract scores every choice against query with WRatio and returns the
// best limit matches, highest score first. Equal scores keep input order.
func Extract(query string, choices []string, limit int) []Match {
	matches := make([]Match, len(choices))
	for i, choice := range choices {
		matches[i] = Match{Text: choice, Score: WRatio(query, choice), Index: i}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return b.Score - a.Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSetOf(s string) map[string]struct{} {
	tokens := strings.Fields(s)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

func round(f float64) int {
	return int(math.Round(f))
}
