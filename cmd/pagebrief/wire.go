package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/analyze"
	"github.com/fwojciec/pagebrief/anthropic"
	"github.com/fwojciec/pagebrief/gemini"
	"github.com/fwojciec/pagebrief/goquery"
	pbhttp "github.com/fwojciec/pagebrief/http"
	"github.com/fwojciec/pagebrief/jwt"
	"github.com/fwojciec/pagebrief/rate"
	"github.com/fwojciec/pagebrief/readability"
	pbslog "github.com/fwojciec/pagebrief/slog"
	"github.com/fwojciec/pagebrief/trafilatura"
)

// NewLogger creates the process logger writing to w.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// BuildAnalyzer wires the pipeline described by cfg. Every service is
// wrapped with logging.
func BuildAnalyzer(ctx context.Context, cfg *Config, logger *slog.Logger) (pagebrief.Analyzer, error) {
	extractor, err := BuildExtractor(cfg)
	if err != nil {
		return nil, err
	}

	summarizer, err := BuildSummarizer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if summarizer != nil {
		summarizer = pbslog.NewLoggingSummarizer(summarizer, logger)
	} else {
		logger.Warn("no summarization backend configured, analyses will carry a placeholder")
	}

	analyzer := &analyze.Analyzer{
		Fetcher:        pbslog.NewLoggingFetcher(BuildFetcher(cfg), logger),
		Extractor:      pbslog.NewLoggingExtractor(extractor, logger),
		Summarizer:     summarizer,
		SummaryTimeout: cfg.SummaryTimeout,
		Headings:       cfg.Headings,
		Normalizer: pagebrief.Normalizer{
			MaxLength: cfg.MaxContentLength,
			MinLength: cfg.MinContentLength,
		},
	}
	return pbslog.NewLoggingAnalyzer(analyzer, logger), nil
}

// BuildFetcher creates the HTTP fetcher described by cfg.
func BuildFetcher(cfg *Config) *pbhttp.Fetcher {
	opts := []pbhttp.Option{
		pbhttp.WithTimeout(cfg.FetchTimeout),
		pbhttp.WithMaxRedirects(cfg.MaxRedirects),
	}
	if cfg.MaxBodyBytes > 0 {
		opts = append(opts, pbhttp.WithMaxBodyBytes(cfg.MaxBodyBytes))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, pbhttp.WithUserAgent(cfg.UserAgent))
	}
	if cfg.HostRate > 0 {
		opts = append(opts, pbhttp.WithLimiter(rate.NewHostLimiter(cfg.HostRate, cfg.HostBurst)))
	}
	return pbhttp.NewFetcher(opts...)
}

// BuildExtractor returns the extractor named by cfg.Extractor.
func BuildExtractor(cfg *Config) (pagebrief.Extractor, error) {
	switch cfg.Extractor {
	case "selectors", "":
		return goquery.NewExtractor(cfg.MinRegionLength), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	default:
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "unknown extractor %q", cfg.Extractor)
	}
}

// BuildSummarizer returns the backend named by cfg.Summarizer, or nil when
// summarization is disabled. With "auto" the first backend that has an API
// key is used.
func BuildSummarizer(ctx context.Context, cfg *Config) (pagebrief.Summarizer, error) {
	provider := cfg.Summarizer
	if provider == "auto" || provider == "" {
		switch {
		case strings.TrimSpace(cfg.GeminiAPIKey) != "":
			provider = "gemini"
		case strings.TrimSpace(cfg.AnthropicAPIKey) != "":
			provider = "anthropic"
		default:
			return nil, nil
		}
	}

	switch provider {
	case "none":
		return nil, nil
	case "gemini":
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return gemini.NewSummarizer(client, cfg.Model, cfg.Policy()), nil
	case "anthropic":
		s, err := anthropic.NewSummarizer(cfg.AnthropicAPIKey, cfg.Model, cfg.Policy())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "unknown summarizer %q", provider)
	}
}

// BuildAuthenticator creates a bearer token authenticator for secret.
func BuildAuthenticator(secret string) (*jwt.Authenticator, error) {
	return jwt.NewAuthenticator([]byte(secret))
}

// Policy returns the generation policy set by the sampling flags.
// Negative or zero values leave the backend default in place.
func (c *Config) Policy() pagebrief.GenerationPolicy {
	var policy pagebrief.GenerationPolicy
	if c.Temperature >= 0 {
		v := float32(c.Temperature)
		policy.Temperature = &v
	}
	if c.TopP >= 0 {
		v := float32(c.TopP)
		policy.TopP = &v
	}
	if c.TopK > 0 {
		v := int32(c.TopK)
		policy.TopK = &v
	}
	if c.MaxOutputTokens > 0 {
		policy.MaxOutputTokens = int32(c.MaxOutputTokens)
	}
	return policy
}
