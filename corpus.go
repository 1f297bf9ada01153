package cdpdoc

import (
	"context"
	"strings"
)

// CorpusService provides the documentation snippets for each CDP.
type CorpusService interface {
	// Lines returns the corpus for cdp as non-empty, whitespace-trimmed
	// lines in file order. Returns ENOTFOUND if no corpus exists.
	Lines(ctx context.Context, cdp CDP) ([]string, error)

	// ReplaceLines atomically replaces the corpus for cdp. Blank lines
	// are dropped and the rest are trimmed before writing.
	ReplaceLines(ctx context.Context, cdp CDP, lines []string) error
}

// CleanLines trims every line and drops the blank ones.
func CleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
