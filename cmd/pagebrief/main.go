package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagebrief"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// LoadEnv loads variables from a dotenv file without overriding ones that
// are already set. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When set they replace the ones
	// built from configuration.
	Analyzer      pagebrief.Analyzer
	Authenticator pagebrief.Authenticator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagebrief"),
		kong.Description("Fetch a web page, extract its readable content and summarize it."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagebrief --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger, err = NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}

	deps.Authenticator = m.Authenticator
	if deps.Authenticator == nil && cli.JWTSecret != "" {
		if deps.Authenticator, err = BuildAuthenticator(cli.JWTSecret); err != nil {
			return err
		}
	}

	if !strings.HasPrefix(kongCtx.Command(), "token") {
		deps.Analyzer = m.Analyzer
		if deps.Analyzer == nil {
			analyzer, err := BuildAnalyzer(ctx, &cli.Config, deps.Logger)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY or ANTHROPIC_API_KEY, or pass --summarizer=none")
				return err
			}
			deps.Analyzer = analyzer
		}
	}

	return kongCtx.Run(deps)
}
