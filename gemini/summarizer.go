// Package gemini implements pagebrief.Summarizer using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/pagebrief"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements pagebrief.Summarizer at compile time.
var _ pagebrief.Summarizer = (*Summarizer)(nil)

// NewClient creates a Gemini API client. An empty key is a configuration
// error rather than something to discover on the first request.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "gemini API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Summarizer implements pagebrief.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
	policy pagebrief.GenerationPolicy
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string, policy pagebrief.GenerationPolicy) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model, policy: policy}
}

// Summarize asks Gemini for a sectioned summary of req.Content.
func (s *Summarizer) Summarize(ctx context.Context, req *pagebrief.SummaryRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "content required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: pagebrief.BuildSummaryPrompt(req)}},
		}},
		BuildConfig(s.policy),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagebrief.Errorf(pagebrief.ESUMMARY, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", pagebrief.Errorf(pagebrief.ESUMMARY, "gemini returned an empty summary")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(policy pagebrief.GenerationPolicy) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: pagebrief.SummarySystemInstruction}},
		},
		Temperature:     policy.Temperature,
		TopP:            policy.TopP,
		MaxOutputTokens: policy.MaxOutputTokens,
	}
	if policy.TopK != nil {
		topK := float32(*policy.TopK)
		config.TopK = &topK
	}
	return config
}
