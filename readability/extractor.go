// Package readability provides a pagebrief.Extractor backed by
// go-shiori/go-readability, a port of Mozilla's Readability scorer.
package readability

import (
	"strings"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/goquery"
	"github.com/go-shiori/go-readability"
)

// Name is reported as the Extraction selector.
const Name = "readability"

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor scores candidate nodes with Readability instead of walking a
// fixed selector list. Useful for article-style pages without landmarks.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article text Readability selects. When Readability
// finds no article, the whole body text is returned as a body fallback so
// the caller's length check decides what happens next.
func (e *Extractor) Extract(rawHTML string) (*pagebrief.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return goquery.BodyFallback(rawHTML), nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return goquery.BodyFallback(rawHTML), nil
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		result := goquery.BodyFallback(rawHTML)
		if article.Title != "" {
			result.Title = article.Title
		}
		return result, nil
	}

	return &pagebrief.Extraction{
		Text:     text,
		Title:    article.Title,
		Selector: Name,
	}, nil
}
