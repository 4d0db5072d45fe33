package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kitanime/animedex"
	animehttp "github.com/kitanime/animedex/http"
	"github.com/kitanime/animedex/otakudesu"
	"github.com/kitanime/animedex/rod"
	animeslog "github.com/kitanime/animedex/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the flag-selected fetcher. Set before calling
	// Run() for end-to-end testing.
	Fetcher animedex.Fetcher
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
		kong.Name("animedex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'animedex --help' to see available commands")
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

	fetcher := m.Fetcher
	if fetcher == nil {
		// The genre taxonomy page only renders its list client-side, so
		// the genres command always goes through the browser.
		if cli.Browser || kongCtx.Command() == "genres" {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = animehttp.NewFetcher()
		}
		defer fetcher.Close()
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = animeslog.NewLoggingFetcher(fetcher, logger)
	}

	opts := []otakudesu.Option{otakudesu.WithBaseURL(cli.BaseURL)}
	if cli.Rate > 0 {
		opts = append(opts, otakudesu.WithRateLimit(cli.Rate))
	}
	deps.Client = otakudesu.NewClient(fetcher, opts...)

	return kongCtx.Run(deps)
}
