package anthropic_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/anthropic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messagesServer answers Messages API calls with a single text block and
// records the decoded request body.
func messagesServer(t *testing.T, text string, got *map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err == nil && got != nil {
			_ = json.Unmarshal(body, got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "msg_test",
			"type":          "message",
			"role":          "assistant",
			"model":         "test-model",
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"content":       []map[string]any{{"type": "text", "text": text}},
			"usage":         map[string]any{"input_tokens": 10, "output_tokens": 5},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewSummarizer_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := anthropic.NewSummarizer("", "", pagebrief.GenerationPolicy{})

	require.Error(t, err)
	assert.Equal(t, pagebrief.EINVALID, pagebrief.ErrorCode(err))
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("returns the model text", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		srv := messagesServer(t, "  **Overview**\nA page.  ", &got)

		s, err := anthropic.NewSummarizer("test-key", "test-model", pagebrief.GenerationPolicy{},
			option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
		require.NoError(t, err)

		summary, err := s.Summarize(context.Background(), &pagebrief.SummaryRequest{
			URL:     "https://example.com",
			Content: "Some page content.",
		})

		require.NoError(t, err)
		assert.Equal(t, "**Overview**\nA page.", summary)
		assert.Equal(t, "test-model", got["model"])
		assert.EqualValues(t, anthropic.DefaultMaxTokens, got["max_tokens"])
	})

	t.Run("empty model text is a summary error", func(t *testing.T) {
		t.Parallel()

		srv := messagesServer(t, "   ", nil)

		s, err := anthropic.NewSummarizer("test-key", "", pagebrief.GenerationPolicy{},
			option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
		require.NoError(t, err)

		_, err = s.Summarize(context.Background(), &pagebrief.SummaryRequest{Content: "text"})

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARY, pagebrief.ErrorCode(err))
	})

	t.Run("upstream failure is returned", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`)
		}))
		t.Cleanup(srv.Close)

		s, err := anthropic.NewSummarizer("test-key", "", pagebrief.GenerationPolicy{},
			option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
		require.NoError(t, err)

		_, err = s.Summarize(context.Background(), &pagebrief.SummaryRequest{Content: "text"})

		require.Error(t, err)
	})

	t.Run("requires content", func(t *testing.T) {
		t.Parallel()

		s, err := anthropic.NewSummarizer("test-key", "", pagebrief.GenerationPolicy{})
		require.NoError(t, err)

		_, err = s.Summarize(context.Background(), &pagebrief.SummaryRequest{})

		require.Error(t, err)
		assert.Equal(t, pagebrief.EINVALID, pagebrief.ErrorCode(err))
	})
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		params := anthropic.BuildParams("m", pagebrief.GenerationPolicy{}, "prompt")

		assert.EqualValues(t, "m", params.Model)
		assert.Equal(t, int64(anthropic.DefaultMaxTokens), params.MaxTokens)
		require.Len(t, params.System, 1)
		assert.Equal(t, pagebrief.SummarySystemInstruction, params.System[0].Text)
		require.Len(t, params.Messages, 1)
		assert.False(t, params.Temperature.Valid())
		assert.False(t, params.TopK.Valid())
	})

	t.Run("passes policy through", func(t *testing.T) {
		t.Parallel()

		temp := float32(0.5)
		topK := int32(20)

		params := anthropic.BuildParams("m", pagebrief.GenerationPolicy{
			Temperature:     &temp,
			TopK:            &topK,
			MaxOutputTokens: 512,
		}, "prompt")

		assert.Equal(t, int64(512), params.MaxTokens)
		assert.InDelta(t, 0.5, params.Temperature.Value, 0.001)
		assert.Equal(t, int64(20), params.TopK.Value)
	})
}
