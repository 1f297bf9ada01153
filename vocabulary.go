package cdpdoc

import (
	"slices"
	"strings"
)

// Vocabulary holds the fixed phrase lists that decide whether a question
// or a corpus line is in scope. All entries are lowercase.
type Vocabulary struct {
	// Canonical in-domain phrases used as the semantic reference.
	Topics []string

	// Substrings that reject a question outright and exclude corpus lines.
	Reject []string

	// Substrings that mark a corpus line as actionable instructions.
	Instructional []string
}

// DefaultVocabulary returns a fresh copy of the built-in phrase lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Topics: []string{
			"customer data platform", "cdp integration", "event tracking",
			"user profiles", "data pipeline", "identity resolution",
			"consent management", "data synchronization", "real-time personalization",
		},
		Reject: []string{
			"movie", "film", "cinema", "actor", "actress", "director",
			"sports", "football", "basketball", "cricket", "weather",
			"date", "time", "politics", "government", "president", "prime minister",
			"healthcare", "medicine", "covid", "pandemic",
		},
		Instructional: []string{
			"how to", "steps", "guide", "configure", "build", "create",
			"setup", "process", "step", "click", "select", "go to", "api", "integration",
		},
	}
}

// Rejects reports whether the query mentions an off-topic keyword.
func (v Vocabulary) Rejects(query string) bool {
	return ContainsAny(strings.ToLower(query), v.Reject)
}

// FilterLines keeps the lines that contain at least one instructional
// keyword and no reject keyword. Order is preserved and duplicates are kept.
func (v Vocabulary) FilterLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		if ContainsAny(lower, v.Instructional) && !ContainsAny(lower, v.Reject) {
			out = append(out, line)
		}
	}
	return out
}

// Clone returns a deep copy of v.
func (v Vocabulary) Clone() Vocabulary {
	return Vocabulary{
		Topics:        slices.Clone(v.Topics),
		Reject:        slices.Clone(v.Reject),
		Instructional: slices.Clone(v.Instructional),
	}
}
