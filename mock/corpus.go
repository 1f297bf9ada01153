package mock

import (
	"context"

	"github.com/fwojciec/cdpdoc"
)

var _ cdpdoc.CorpusService = (*CorpusService)(nil)

// CorpusService is a mock implementation of cdpdoc.CorpusService.
type CorpusService struct {
	LinesFn        func(ctx context.Context, cdp cdpdoc.CDP) ([]string, error)
	ReplaceLinesFn func(ctx context.Context, cdp cdpdoc.CDP, lines []string) error
}

func (s *CorpusService) Lines(ctx context.Context, cdp cdpdoc.CDP) ([]string, error) {
	return s.LinesFn(ctx, cdp)
}

func (s *CorpusService) ReplaceLines(ctx context.Context, cdp cdpdoc.CDP, lines []string) error {
	return s.ReplaceLinesFn(ctx, cdp, lines)
}
