package search

import (
	"context"
	"fmt"

	"github.com/fwojciec/cdpdoc"
)

// Ensure Searcher implements cdpdoc.Searcher at compile time.
var _ cdpdoc.Searcher = (*Searcher)(nil)

// Searcher answers questions from a CDP's corpus. It keeps no per-call
// state, so one Searcher can serve concurrent questions.
type Searcher struct {
	Gate       *Gate
	Corpus     cdpdoc.CorpusService
	Normalizer cdpdoc.Normalizer
	Ranker     *Ranker
	Vocabulary cdpdoc.Vocabulary
}

// Search runs the pipeline for question against cdp's corpus. The gate
// runs before the corpus is touched.
func (s *Searcher) Search(ctx context.Context, cdp cdpdoc.CDP, question string) (*cdpdoc.Result, error) {
	ok, err := s.Gate.IsRelevant(ctx, question)
	if err != nil {
		return nil, err
	}
	if !ok {
		return cdpdoc.Refused(cdp), nil
	}

	lines, err := s.Corpus.Lines(ctx, cdp)
	if cdpdoc.ErrorCode(err) == cdpdoc.ENOTFOUND {
		return cdpdoc.CorpusMissing(cdp), nil
	} else if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", cdp, err)
	}

	query := s.Normalizer.Normalize(question)

	lines = s.Vocabulary.FilterLines(lines)
	if len(lines) == 0 {
		return cdpdoc.NoResults(cdp, cdpdoc.StageFilter), nil
	}

	ranked, err := s.Ranker.Rank(ctx, query, lines)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return cdpdoc.NoResults(cdp, cdpdoc.StageRank), nil
	}

	return cdpdoc.Found(cdp, ranked), nil
}
