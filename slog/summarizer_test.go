package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/mock"
	pbslog "github.com/fwojciec/pagebrief/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs input and output sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(context.Context, *pagebrief.SummaryRequest) (string, error) {
				return "short", nil
			},
		}

		s := pbslog.NewLoggingSummarizer(inner, logger)
		summary, err := s.Summarize(context.Background(), &pagebrief.SummaryRequest{URL: "https://example.com", Content: "0123456789"})

		require.NoError(t, err)
		assert.Equal(t, "short", summary)
		output := buf.String()
		assert.Contains(t, output, "msg=summarize")
		assert.Contains(t, output, "input=10")
		assert.Contains(t, output, "output=5")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(context.Context, *pagebrief.SummaryRequest) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		_, err := pbslog.NewLoggingSummarizer(inner, logger).Summarize(context.Background(), &pagebrief.SummaryRequest{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="quota exceeded"`)
	})
}
