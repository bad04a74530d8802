package pagebrief

import (
	"context"
	"fmt"
	"strings"
)

// DefaultSummaryHeadings are the sections a summary must cover when the
// caller does not ask for others.
var DefaultSummaryHeadings = []string{
	"Overview",
	"Key Points",
	"Important Details",
	"Takeaways",
}

// SummarySystemInstruction frames every summarization call.
const SummarySystemInstruction = "You summarize web pages for a reader who has not seen them. " +
	"Use only the page content provided. If the content does not cover a section, say so briefly instead of guessing."

// SummaryRequest is the input to a summarization call.
type SummaryRequest struct {
	URL      string
	Title    string
	Content  string
	Headings []string
}

// GenerationPolicy is passed through to the summarization backend as is.
// Nil pointers and zero values leave the backend default in place.
type GenerationPolicy struct {
	Temperature     *float32
	TopP            *float32
	TopK            *int32
	MaxOutputTokens int32
}

// Summarizer produces a summary of normalized page content. Implementations
// wrap an external text-generation service and honor context cancellation
// on a best-effort basis.
type Summarizer interface {
	Summarize(ctx context.Context, req *SummaryRequest) (string, error)
}

// BuildSummaryPrompt renders the user prompt for req. The headings listed in
// req (or DefaultSummaryHeadings) become the required sections.
func BuildSummaryPrompt(req *SummaryRequest) string {
	headings := req.Headings
	if len(headings) == 0 {
		headings = DefaultSummaryHeadings
	}

	var sb strings.Builder
	sb.WriteString("Summarize the web page below. Structure the summary with these sections, in order:\n")
	for i, h := range headings {
		fmt.Fprintf(&sb, "%d. **%s**\n", i+1, h)
	}
	sb.WriteString("\nKeep it concise and use bullet points where appropriate.\n\n")
	sb.WriteString("<page>\n")
	fmt.Fprintf(&sb, "<source>%s</source>\n", req.URL)
	if req.Title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", req.Title)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", req.Content)
	sb.WriteString("</page>")
	return sb.String()
}
