package mock

import "github.com/fwojciec/pagebrief"

var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagebrief.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagebrief.Extraction, error)
}

func (e *Extractor) Extract(html string) (*pagebrief.Extraction, error) {
	return e.ExtractFn(html)
}
