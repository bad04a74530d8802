package mock

import (
	"context"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pagebrief.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, rawURL string) (*pagebrief.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*pagebrief.Analysis, error) {
	return a.AnalyzeFn(ctx, rawURL)
}
