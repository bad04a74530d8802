package pagebrief

import (
	"context"
	"time"
)

// Stage is a state of the analysis pipeline.
type Stage string

// Pipeline stages, in execution order. StageFailed is terminal and
// reachable from every other stage.
const (
	StageValidating  Stage = "validating"
	StageFetching    Stage = "fetching"
	StageExtracting  Stage = "extracting"
	StageNormalizing Stage = "normalizing"
	StageSummarizing Stage = "summarizing"
	StageResponding  Stage = "responding"
	StageFailed      Stage = "failed"
)

// SummaryStatus reports what happened to the optional summarization step.
type SummaryStatus string

// Summary outcomes.
const (
	SummaryOK      SummaryStatus = "ok"
	SummarySkipped SummaryStatus = "skipped"
	SummaryTimeout SummaryStatus = "timeout"
	SummaryFailed  SummaryStatus = "failed"
)

// Placeholder analyses returned when no summary could be produced. The
// extracted content is still returned alongside them.
const (
	PlaceholderNotConfigured = "Summary unavailable: no summarization service is configured. The extracted page content is included."
	PlaceholderTimeout       = "Summary unavailable: the summarization service did not respond in time. The extracted page content is included."
	PlaceholderFailed        = "Summary unavailable: the summarization service returned an error. The extracted page content is included."
)

// AnalysisRequest is the inbound request body.
type AnalysisRequest struct {
	URL string `json:"url" validate:"required"`
}

// Analysis is the successful response envelope.
type Analysis struct {
	Success  bool     `json:"success"`
	Analysis string   `json:"analysis,omitempty"`
	Content  string   `json:"content,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Metadata describes how an Analysis was produced.
type Metadata struct {
	URL              string    `json:"url"`
	Timestamp        time.Time `json:"timestamp"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
	ContentLength    int       `json:"contentLength"`

	RequestID   string            `json:"requestId,omitempty"`
	FinalURL    string            `json:"finalUrl,omitempty"`
	Title       string            `json:"title,omitempty"`
	Selector    string            `json:"selector,omitempty"`
	Framework   Framework         `json:"framework,omitempty"`
	ContentHash string            `json:"contentHash,omitempty"`
	Truncated   bool              `json:"truncated"`
	Summary     SummaryStatus     `json:"summary"`
	Stages      []StageTransition `json:"stages,omitempty"`
}

// StageTransition records entry into a pipeline stage.
type StageTransition struct {
	Stage Stage     `json:"stage"`
	At    time.Time `json:"at"`
}

// Analyzer runs the full pipeline for one URL.
type Analyzer interface {
	// Analyze validates, fetches, extracts, normalizes and summarizes the
	// page at rawURL. Failures are returned as *Error; a failed or missing
	// summarizer is not a failure.
	Analyze(ctx context.Context, rawURL string) (*Analysis, error)
}
