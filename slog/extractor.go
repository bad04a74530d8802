package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagebrief"
)

// Ensure LoggingExtractor implements pagebrief.Extractor.
var _ pagebrief.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagebrief.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagebrief.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs which region won.
func (e *LoggingExtractor) Extract(html string) (result *pagebrief.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{"size", len(html)}
		if result != nil {
			attrs = append(attrs,
				"selector", result.Selector,
				"framework", string(result.Framework),
				"length", len(result.Text),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
