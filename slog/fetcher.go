// Package slog decorates pagebrief services with structured logging via
// log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagebrief"
)

// Ensure LoggingFetcher implements pagebrief.Fetcher.
var _ pagebrief.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagebrief.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagebrief.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (result *pagebrief.FetchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if result != nil {
			attrs = append(attrs,
				"final_url", result.FinalURL,
				"status", result.StatusCode,
				"size", len(result.Body),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
