package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/mock"
	pbslog "github.com/fwojciec/pagebrief/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs selector at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			ExtractFn: func(string) (*pagebrief.Extraction, error) {
				return &pagebrief.Extraction{Text: "hello", Selector: "main", Framework: pagebrief.FrameworkDocusaurus}, nil
			},
		}

		e := pbslog.NewLoggingExtractor(inner, logger)
		result, err := e.Extract("<main>hello</main>")

		require.NoError(t, err)
		assert.Equal(t, "hello", result.Text)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "selector=main")
		assert.Contains(t, output, "framework=docusaurus")
		assert.Contains(t, output, "length=5")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(string) (*pagebrief.Extraction, error) {
				return &pagebrief.Extraction{Selector: pagebrief.SelectorBodyFallback}, nil
			},
		}

		_, err := pbslog.NewLoggingExtractor(inner, logger).Extract("")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
