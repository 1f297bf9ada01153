package cdpdoc

import (
	"context"
	"fmt"
)

// Outcome classifies how a search finished.
type Outcome string

// Search outcomes.
const (
	OutcomeOK            Outcome = "ok"
	OutcomeRefused       Outcome = "refused"
	OutcomeCorpusMissing Outcome = "corpus_missing"
	OutcomeNoResults     Outcome = "no_results"
)

// Stage names the pipeline step that emptied the candidate set.
type Stage string

// Stages reported with OutcomeNoResults.
const (
	StageFilter Stage = "filter"
	StageRank   Stage = "rank"
)

// Diagnostic messages shown in place of results.
const (
	MessageRefused         = "❌ This chatbot only answers Customer Data Platform (CDP)-related questions. Please ask a relevant question."
	MessageNoResultsFilter = "⚠️ No relevant setup instructions found. Try refining your query."
	MessageNoResultsRank   = "⚠️ No relevant setup instructions found."
)

// MessageCorpusMissing returns the diagnostic for a CDP with no corpus.
func MessageCorpusMissing(cdp CDP) string {
	return fmt.Sprintf("⚠️ Documentation for %s is not available. Run the scraper first.", cdp)
}

// Result is the outcome of one search. Lines is set only for OutcomeOK.
type Result struct {
	Outcome Outcome  `json:"outcome"`
	CDP     CDP      `json:"cdp"`
	Stage   Stage    `json:"stage,omitempty"`
	Lines   []string `json:"lines,omitempty"`
}

// Refused returns the result for an off-topic question.
func Refused(cdp CDP) *Result {
	return &Result{Outcome: OutcomeRefused, CDP: cdp}
}

// CorpusMissing returns the result for a CDP without a corpus.
func CorpusMissing(cdp CDP) *Result {
	return &Result{Outcome: OutcomeCorpusMissing, CDP: cdp}
}

// NoResults returns the result for a search that ran out of candidates.
func NoResults(cdp CDP, stage Stage) *Result {
	return &Result{Outcome: OutcomeNoResults, CDP: cdp, Stage: stage}
}

// Found returns a successful result.
func Found(cdp CDP, lines []string) *Result {
	return &Result{Outcome: OutcomeOK, CDP: cdp, Lines: lines}
}

// Messages renders the result as user-facing strings. It always returns
// at least one string: the ranked lines, or a single diagnostic.
func (r *Result) Messages() []string {
	switch r.Outcome {
	case OutcomeOK:
		if len(r.Lines) > 0 {
			out := make([]string, len(r.Lines))
			copy(out, r.Lines)
			return out
		}
		return []string{MessageNoResultsRank}
	case OutcomeRefused:
		return []string{MessageRefused}
	case OutcomeCorpusMissing:
		return []string{MessageCorpusMissing(r.CDP)}
	case OutcomeNoResults:
		if r.Stage == StageFilter {
			return []string{MessageNoResultsFilter}
		}
		return []string{MessageNoResultsRank}
	}
	return []string{MessageNoResultsRank}
}

// Searcher answers a question from the corpus of one CDP.
type Searcher interface {
	// Search runs the retrieval pipeline. Refusals, missing corpora and
	// empty result sets are reported through Result.Outcome; errors are
	// reserved for infrastructure failures.
	Search(ctx context.Context, cdp CDP, question string) (*Result, error)
}

// Normalizer canonicalizes a question before matching.
type Normalizer interface {
	Normalize(text string) string
}
