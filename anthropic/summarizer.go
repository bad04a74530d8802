// Package anthropic implements pagebrief.Summarizer using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/pagebrief"
)

// Defaults applied when the policy leaves them unset.
const (
	DefaultModel     = "claude-3-7-sonnet-latest"
	DefaultMaxTokens = 2048
)

// Ensure Summarizer implements pagebrief.Summarizer at compile time.
var _ pagebrief.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagebrief.Summarizer using Anthropic models.
type Summarizer struct {
	client *anthropic.Client
	model  string
	policy pagebrief.GenerationPolicy
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel. Extra request options are applied after the API key.
func NewSummarizer(apiKey, model string, policy pagebrief.GenerationPolicy, opts ...option.RequestOption) (*Summarizer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "anthropic API key required")
	}
	if model == "" {
		model = DefaultModel
	}

	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &Summarizer{client: &client, model: model, policy: policy}, nil
}

// Summarize asks the model for a sectioned summary of req.Content.
func (s *Summarizer) Summarize(ctx context.Context, req *pagebrief.SummaryRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "content required")
	}

	message, err := s.client.Messages.New(ctx, BuildParams(s.model, s.policy, pagebrief.BuildSummaryPrompt(req)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range message.Content {
		sb.WriteString(block.AsText().Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", pagebrief.Errorf(pagebrief.ESUMMARY, "anthropic returned an empty summary")
	}
	return text, nil
}

// BuildParams returns the Messages API parameters for one summary prompt.
func BuildParams(model string, policy pagebrief.GenerationPolicy, prompt string) anthropic.MessageNewParams {
	maxTokens := int64(DefaultMaxTokens)
	if policy.MaxOutputTokens > 0 {
		maxTokens = int64(policy.MaxOutputTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: pagebrief.SummarySystemInstruction},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if policy.Temperature != nil {
		params.Temperature = anthropic.Float(float64(*policy.Temperature))
	}
	if policy.TopP != nil {
		params.TopP = anthropic.Float(float64(*policy.TopP))
	}
	if policy.TopK != nil {
		params.TopK = anthropic.Int(int64(*policy.TopK))
	}
	return params
}
