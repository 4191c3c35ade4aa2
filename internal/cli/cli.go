package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/cfb-gamelines/internal/logger"
	"github.com/pfrederiksen/cfb-gamelines/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DefaultLimit is the number of games requested when run without flags
const DefaultLimit = 10

type options struct {
	limit   int
	format  string
	sort    string
	url     string
	verbose bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gamelines",
		Short: "Print current college football betting lines",
		Long: `A CLI tool that scrapes the sportsbook college football listing and prints
each game's teams and spread. Network or markup problems produce empty output
and a logged diagnostic rather than a failure.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGameLines(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.limit, "limit", DefaultLimit, "Maximum number of games to return")
	cmd.Flags().StringVar(&opts.format, "format", string(FormatText), "Output format: text or json")
	cmd.Flags().StringVar(&opts.sort, "sort", string(SortNone), "Sort order: none, team or conference")
	cmd.Flags().StringVar(&opts.url, "url", scraper.GameLinesURL, "Listing page to scrape")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Show total, moneyline and conference; enable debug logging")
	cmd.Flags().MarkHidden("url") //nolint:errcheck

	return cmd
}

// runGameLines is the main command logic
func runGameLines(stdout, stderr io.Writer, opts *options) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	sortOrder := SortOrder(strings.ToLower(opts.sort))
	if !sortOrder.Valid() {
		return fmt.Errorf("invalid sort: %s (must be 'none', 'team' or 'conference')", opts.sort)
	}

	if opts.limit < 0 {
		return fmt.Errorf("invalid limit: %d (must not be negative)", opts.limit)
	}

	level := logger.LevelInfo
	if opts.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, stderr))

	sc := scraper.New()
	sc.SetURL(opts.url)

	logger.Debug("Fetching game lines", logger.Fields{"url": sc.URL(), "limit": opts.limit})

	games := sc.FetchGameLines(opts.limit)
	sortGameLines(games, sortOrder)

	logger.SetGauge("cli.games.returned", float64(len(games)))
	logger.Debug("Metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		SourceURL: sc.URL(),
		Games:     games,
		GameCount: len(games),
	}

	if err := WriteOutput(stdout, result, format, opts.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
