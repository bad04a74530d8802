package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewClient(context.Background(), "  ")

	require.Error(t, err)
	assert.Equal(t, pagebrief.EINVALID, pagebrief.ErrorCode(err))
	assert.Contains(t, pagebrief.ErrorMessage(err), "API key required")
}

func TestSummarizer_Summarize_RequiresContent(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "", pagebrief.GenerationPolicy{}) // nil client ok for this test

	_, err := s.Summarize(context.Background(), &pagebrief.SummaryRequest{URL: "https://example.com"})

	require.Error(t, err)
	assert.Equal(t, pagebrief.EINVALID, pagebrief.ErrorCode(err))
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(pagebrief.GenerationPolicy{})

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, pagebrief.SummarySystemInstruction, config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_LeavesUnsetPolicyToBackend(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(pagebrief.GenerationPolicy{})

	assert.Nil(t, config.Temperature)
	assert.Nil(t, config.TopP)
	assert.Nil(t, config.TopK)
	assert.Zero(t, config.MaxOutputTokens)
}

func TestBuildConfig_PassesPolicyThrough(t *testing.T) {
	t.Parallel()

	temp := float32(0.2)
	topP := float32(0.9)
	topK := int32(40)

	config := gemini.BuildConfig(pagebrief.GenerationPolicy{
		Temperature:     &temp,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: 1024,
	})

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 0.001)
	require.NotNil(t, config.TopP)
	assert.InDelta(t, 0.9, *config.TopP, 0.001)
	require.NotNil(t, config.TopK)
	assert.InDelta(t, 40, *config.TopK, 0.001)
	assert.Equal(t, int32(1024), config.MaxOutputTokens)
}
