package analyze_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/analyze"
	"github.com/fwojciec/pagebrief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	req := &pagebrief.SummaryRequest{URL: "https://example.com", Content: "content"}

	t.Run("returns the trimmed summary", func(t *testing.T) {
		t.Parallel()

		s := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, got *pagebrief.SummaryRequest) (string, error) {
				assert.Equal(t, req, got)
				return "\n  **Overview** text  \n", nil
			},
		}

		text, err := analyze.Summarize(context.Background(), s, req, time.Second)

		require.NoError(t, err)
		assert.Equal(t, "**Overview** text", text)
	})

	t.Run("times out when the backend honors cancellation", func(t *testing.T) {
		t.Parallel()

		s := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, _ *pagebrief.SummaryRequest) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		}

		start := time.Now()
		_, err := analyze.Summarize(context.Background(), s, req, 20*time.Millisecond)

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARYTIMEOUT, pagebrief.ErrorCode(err))
		assert.True(t, pagebrief.IsTimeout(err))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("abandons a backend that ignores cancellation", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		t.Cleanup(func() { close(release) })
		s := &mock.Summarizer{
			SummarizeFn: func(context.Context, *pagebrief.SummaryRequest) (string, error) {
				<-release
				return "too late", nil
			},
		}

		start := time.Now()
		_, err := analyze.Summarize(context.Background(), s, req, 20*time.Millisecond)

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARYTIMEOUT, pagebrief.ErrorCode(err))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("backend error is a summarization failure", func(t *testing.T) {
		t.Parallel()

		s := &mock.Summarizer{
			SummarizeFn: func(context.Context, *pagebrief.SummaryRequest) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		_, err := analyze.Summarize(context.Background(), s, req, time.Second)

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARY, pagebrief.ErrorCode(err))
		assert.Contains(t, pagebrief.ErrorMessage(err), "quota exceeded")
	})

	t.Run("blank output is a summarization failure", func(t *testing.T) {
		t.Parallel()

		s := &mock.Summarizer{
			SummarizeFn: func(context.Context, *pagebrief.SummaryRequest) (string, error) {
				return " \n\t ", nil
			},
		}

		_, err := analyze.Summarize(context.Background(), s, req, time.Second)

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARY, pagebrief.ErrorCode(err))
	})

	t.Run("canceled parent is a failure, not a timeout", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, _ *pagebrief.SummaryRequest) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		}

		_, err := analyze.Summarize(ctx, s, req, time.Second)

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARY, pagebrief.ErrorCode(err))
	})

	t.Run("nil summarizer is a failure", func(t *testing.T) {
		t.Parallel()

		_, err := analyze.Summarize(context.Background(), nil, req, time.Second)

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARY, pagebrief.ErrorCode(err))
	})
}
