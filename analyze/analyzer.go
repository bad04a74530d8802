// Package analyze runs the page analysis pipeline: validate, fetch,
// extract, normalize, summarize and respond.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagebrief"
	"github.com/google/uuid"
)

// Ensure Analyzer implements pagebrief.Analyzer at compile time.
var _ pagebrief.Analyzer = (*Analyzer)(nil)

// Analyzer orchestrates one analysis per call. It holds configuration
// only, so a single Analyzer serves concurrent requests.
type Analyzer struct {
	Fetcher   pagebrief.Fetcher
	Extractor pagebrief.Extractor

	// Summarizer is optional. Without one, analyses carry
	// PlaceholderNotConfigured instead of a summary.
	Summarizer     pagebrief.Summarizer
	SummaryTimeout time.Duration
	Headings       []string

	Normalizer pagebrief.Normalizer

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// run tracks the stage transitions of a single Analyze call.
type run struct {
	now    func() time.Time
	stages []pagebrief.StageTransition
}

func (r *run) enter(stage pagebrief.Stage) {
	r.stages = append(r.stages, pagebrief.StageTransition{Stage: stage, At: r.now()})
}

func (r *run) fail(err error) error {
	r.enter(pagebrief.StageFailed)
	return err
}

func (r *run) elapsed() time.Duration {
	if len(r.stages) == 0 {
		return 0
	}
	return r.stages[len(r.stages)-1].At.Sub(r.stages[0].At)
}

// Analyze runs the pipeline for rawURL. Every failure is a *pagebrief.Error.
// A missing, failing or slow summarizer never fails the analysis.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*pagebrief.Analysis, error) {
	r := &run{now: a.now()}

	r.enter(pagebrief.StageValidating)
	u, err := pagebrief.ValidateURL(rawURL)
	if err != nil {
		return nil, r.fail(err)
	}

	r.enter(pagebrief.StageFetching)
	page, err := a.Fetcher.Fetch(ctx, u.String())
	if err != nil {
		return nil, r.fail(stageError(err, pagebrief.EFETCH, "could not fetch "+u.String()))
	}

	r.enter(pagebrief.StageExtracting)
	extraction, err := a.Extractor.Extract(page.Body)
	if err != nil {
		return nil, r.fail(stageError(err, pagebrief.EINTERNAL, "extraction failed"))
	}
	if extraction == nil {
		return nil, r.fail(pagebrief.Errorf(pagebrief.EINTERNAL, "extractor returned no result"))
	}

	r.enter(pagebrief.StageNormalizing)
	content := a.Normalizer.Normalize(extraction.Text)
	if err := a.Normalizer.Check(content); err != nil {
		return nil, r.fail(err)
	}

	analysis, status := a.summarize(ctx, r, &pagebrief.SummaryRequest{
		URL:      u.String(),
		Title:    extraction.Title,
		Content:  content.Text,
		Headings: a.Headings,
	})

	r.enter(pagebrief.StageResponding)
	return &pagebrief.Analysis{
		Success:  true,
		Analysis: analysis,
		Content:  content.Text,
		Metadata: pagebrief.Metadata{
			URL:              rawURL,
			Timestamp:        r.stages[0].At.UTC(),
			ProcessingTimeMs: r.elapsed().Milliseconds(),
			ContentLength:    content.Length,
			RequestID:        a.newID(),
			FinalURL:         page.FinalURL,
			Title:            extraction.Title,
			Selector:         extraction.Selector,
			Framework:        extraction.Framework,
			ContentHash:      ContentHash(content.Text),
			Truncated:        content.Truncated,
			Summary:          status,
			Stages:           r.stages,
		},
	}, nil
}

// summarize produces the analysis text, substituting a placeholder when no
// summary is available.
func (a *Analyzer) summarize(ctx context.Context, r *run, req *pagebrief.SummaryRequest) (string, pagebrief.SummaryStatus) {
	if a.Summarizer == nil {
		return pagebrief.PlaceholderNotConfigured, pagebrief.SummarySkipped
	}

	r.enter(pagebrief.StageSummarizing)
	text, err := Summarize(ctx, a.Summarizer, req, a.SummaryTimeout)
	switch pagebrief.ErrorCode(err) {
	case "":
		return text, pagebrief.SummaryOK
	case pagebrief.ESUMMARYTIMEOUT:
		return pagebrief.PlaceholderTimeout, pagebrief.SummaryTimeout
	default:
		return pagebrief.PlaceholderFailed, pagebrief.SummaryFailed
	}
}

// ContentHash returns the hex xxhash64 digest of text.
func ContentHash(text string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(text))
}

// stageError keeps application errors as they are and wraps anything else
// in code.
func stageError(err error, code, message string) error {
	var e *pagebrief.Error
	if errors.As(err, &e) {
		return err
	}
	return pagebrief.Errorf(code, "%s: %v", message, err)
}

func (a *Analyzer) now() func() time.Time {
	if a.Now != nil {
		return a.Now
	}
	return time.Now
}

func (a *Analyzer) newID() string {
	if a.NewID != nil {
		return a.NewID()
	}
	return uuid.NewString()
}
