package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagebrief"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *slog.Logger
	Analyzer      pagebrief.Analyzer
	Authenticator pagebrief.Authenticator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config `embed:""`

	Serve   ServeCmd   `cmd:"" help:"Serve the analysis API over HTTP"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a single URL and print the result as JSON"`
	Token   TokenCmd   `cmd:"" help:"Issue a bearer token for the analysis API"`
}

// Config holds the settings shared by all commands. Every flag can also be
// set through the environment.
type Config struct {
	LogLevel  string `default:"info" enum:"debug,info,warn,error" env:"PAGEBRIEF_LOG_LEVEL" help:"Log level"`
	LogFormat string `default:"text" enum:"text,json" env:"PAGEBRIEF_LOG_FORMAT" help:"Log format"`

	FetchTimeout time.Duration `default:"15s" env:"PAGEBRIEF_FETCH_TIMEOUT" help:"Page fetch timeout"`
	MaxRedirects int           `default:"5" env:"PAGEBRIEF_MAX_REDIRECTS" help:"Redirects followed before giving up"`
	MaxBodyBytes int64         `default:"5242880" env:"PAGEBRIEF_MAX_BODY_BYTES" help:"Maximum page size read"`
	UserAgent    string        `env:"PAGEBRIEF_USER_AGENT" help:"Override the browser User-Agent"`
	HostRate     float64       `default:"0" env:"PAGEBRIEF_HOST_RATE" help:"Requests per second per host (0 disables)"`
	HostBurst    int           `default:"1" env:"PAGEBRIEF_HOST_BURST" help:"Requests allowed in a burst per host"`

	Extractor        string `default:"selectors" enum:"selectors,readability,trafilatura" env:"PAGEBRIEF_EXTRACTOR" help:"Content extraction strategy"`
	MinRegionLength  int    `default:"100" env:"PAGEBRIEF_MIN_REGION_LENGTH" help:"Characters a content region must exceed"`
	MaxContentLength int    `default:"8000" env:"PAGEBRIEF_MAX_CONTENT_LENGTH" help:"Cap on normalized content length"`
	MinContentLength int    `default:"100" env:"PAGEBRIEF_MIN_CONTENT_LENGTH" help:"Minimum normalized content length"`

	Summarizer      string        `default:"auto" enum:"auto,gemini,anthropic,none" env:"PAGEBRIEF_SUMMARIZER" help:"Summarization backend (auto picks the first with an API key)"`
	Model           string        `env:"PAGEBRIEF_MODEL" help:"Model name for the summarization backend"`
	SummaryTimeout  time.Duration `default:"30s" env:"PAGEBRIEF_SUMMARY_TIMEOUT" help:"Summarization timeout"`
	Headings        []string      `env:"PAGEBRIEF_HEADINGS" help:"Sections the summary must cover"`
	Temperature     float64       `default:"-1" env:"PAGEBRIEF_TEMPERATURE" help:"Sampling temperature (negative uses the backend default)"`
	TopP            float64       `default:"-1" env:"PAGEBRIEF_TOP_P" help:"Nucleus sampling limit (negative uses the backend default)"`
	TopK            int           `default:"0" env:"PAGEBRIEF_TOP_K" help:"Top-k sampling limit (0 uses the backend default)"`
	MaxOutputTokens int           `default:"0" env:"PAGEBRIEF_MAX_OUTPUT_TOKENS" help:"Maximum summary size in tokens (0 uses the backend default)"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY" help:"Google Gemini API key"`
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`

	JWTSecret string `name:"jwt-secret" env:"PAGEBRIEF_JWT_SECRET" help:"HS256 secret for bearer tokens (empty disables authentication)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string        `default:":8080" env:"PAGEBRIEF_ADDR" help:"Listen address"`
	ShutdownTimeout time.Duration `default:"10s" env:"PAGEBRIEF_SHUTDOWN_TIMEOUT" help:"Grace period for in-flight requests"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// TokenCmd is the "token" subcommand.
type TokenCmd struct {
	Subject string        `arg:"" help:"Subject the token is issued to"`
	TTL     time.Duration `default:"24h" help:"Token lifetime"`
}
