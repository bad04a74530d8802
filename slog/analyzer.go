package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagebrief"
)

// Ensure LoggingAnalyzer implements pagebrief.Analyzer.
var _ pagebrief.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   pagebrief.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagebrief.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, rawURL string) (result *pagebrief.Analysis, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", rawURL}
		if result != nil {
			attrs = append(attrs,
				"request_id", result.Metadata.RequestID,
				"selector", result.Metadata.Selector,
				"length", result.Metadata.ContentLength,
				"truncated", result.Metadata.Truncated,
				"summary", string(result.Metadata.Summary),
			)
		}
		if err != nil {
			attrs = append(attrs, "code", pagebrief.ErrorCode(err))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		a.logger.Info("analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, rawURL)
}
