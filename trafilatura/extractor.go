// Package trafilatura provides a pagebrief.Extractor backed by
// markusmobius/go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// Name is reported as the Extraction selector.
const Name = "trafilatura"

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura, which combines its own heuristics with
// Readability and DOM Distiller fallbacks.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			ExcludeTables:  false,
		},
	}
}

// Extract returns the main text trafilatura selects. When nothing is found
// the whole body text is returned as a body fallback rather than an error.
func (e *Extractor) Extract(rawHTML string) (*pagebrief.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return goquery.BodyFallback(rawHTML), nil
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil || result == nil {
		return goquery.BodyFallback(rawHTML), nil
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		fallback := goquery.BodyFallback(rawHTML)
		if result.Metadata.Title != "" {
			fallback.Title = result.Metadata.Title
		}
		return fallback, nil
	}

	return &pagebrief.Extraction{
		Text:     text,
		Title:    result.Metadata.Title,
		Selector: Name,
	}, nil
}
