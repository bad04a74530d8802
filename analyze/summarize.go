package analyze

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pagebrief"
)

// DefaultSummaryTimeout bounds a summarization call when none is configured.
const DefaultSummaryTimeout = 30 * time.Second

type summaryResult struct {
	text string
	err  error
}

// Summarize calls s under a deadline and returns whichever settles first:
// the summary or the timer. On timeout the call is abandoned, not awaited;
// its context is cancelled and its result is dropped into a buffered channel.
//
// A timeout yields ESUMMARYTIMEOUT. Any backend error or blank output
// yields ESUMMARY.
func Summarize(ctx context.Context, s pagebrief.Summarizer, req *pagebrief.SummaryRequest, timeout time.Duration) (string, error) {
	if s == nil {
		return "", pagebrief.Errorf(pagebrief.ESUMMARY, "no summarizer configured")
	}
	if timeout <= 0 {
		timeout = DefaultSummaryTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make(chan summaryResult, 1)
	go func() {
		text, err := s.Summarize(ctx, req)
		results <- summaryResult{text: text, err: err}
	}()

	select {
	case r := <-results:
		if r.err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", timeoutError(timeout)
			}
			var e *pagebrief.Error
			if errors.As(r.err, &e) {
				return "", pagebrief.Errorf(pagebrief.ESUMMARY, "summarization failed: %s", e.Message)
			}
			return "", pagebrief.Errorf(pagebrief.ESUMMARY, "summarization failed: %v", r.err)
		}
		text := strings.TrimSpace(r.text)
		if text == "" {
			return "", pagebrief.Errorf(pagebrief.ESUMMARY, "summarization returned no text")
		}
		return text, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", timeoutError(timeout)
		}
		return "", pagebrief.Errorf(pagebrief.ESUMMARY, "summarization canceled")
	}
}

func timeoutError(timeout time.Duration) error {
	return &pagebrief.Error{
		Code:    pagebrief.ESUMMARYTIMEOUT,
		Timeout: true,
		Message: "summarization did not finish within " + timeout.String(),
	}
}
