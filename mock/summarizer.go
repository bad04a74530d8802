package mock

import (
	"context"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagebrief.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req *pagebrief.SummaryRequest) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req *pagebrief.SummaryRequest) (string, error) {
	return s.SummarizeFn(ctx, req)
}
