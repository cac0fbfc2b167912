package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/ffstats/internal/config"
	"github.com/pfrederiksen/ffstats/internal/logger"
	"github.com/pfrederiksen/ffstats/internal/scraper"
	"github.com/pfrederiksen/ffstats/internal/storage"
	"github.com/pfrederiksen/ffstats/internal/table"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagYears            []int
	flagFormat           string
	flagWriteWeeks       bool
	flagSkipUnrecognized bool
	flagCleanOpponent    bool
	flagVerbose          bool
)

// NewRootCmd creates the root command. Flags default to the values in cfg
// and write back into it.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffstats",
		Short: "Scrape weekly fantasy football stats into season CSV files",
		Long: `A CLI tool that downloads the weekly fantasy points tables from footballdb.com,
normalizes every player row and writes one <year>_data.csv per season.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd, cfg)
		},
	}

	// Define flags
	f := cmd.Flags()
	f.IntSliceVar(&flagYears, "years", nil, "Seasons to scrape, e.g. 2016,2017 (required)")
	f.IntVar(&cfg.FirstWeek, "first-week", cfg.FirstWeek, "First week of each season")
	f.IntVar(&cfg.LastWeek, "last-week", cfg.LastWeek, "Last week of each season")
	f.StringVar(&cfg.Rules, "rules", cfg.Rules, "Scoring rules: 1 (standard) or 2 (PPR)")
	f.StringVar(&cfg.Positions, "positions", cfg.Positions, "Comma separated position filter")
	f.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for CSV output")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	f.StringVar(&flagFormat, "format", "text", "Output format: text or json")
	f.BoolVar(&flagWriteWeeks, "write-weeks", false, "Also write week<N>.csv for every week")
	f.BoolVar(&flagSkipUnrecognized, "skip-unrecognized", false, "Drop rows with an unrecognized cell instead of failing")
	f.BoolVar(&flagCleanOpponent, "clean-opponent", false, "Drop the @ prefix from away opponents")
	f.BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("years")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, cfg *config.Config) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return errors.Newf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	if len(flagYears) == 0 {
		return errors.New("--years is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return errors.Wrap(err, "initializing storage")
	}

	sc := scraper.New(scraper.Options{
		BaseURL:   cfg.BaseURL,
		Positions: cfg.Positions,
		Rules:     cfg.Rules,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		HeaderRow: cfg.HeaderRow,
		Points: table.PointsConversion{
			Column:  cfg.PointsColumn,
			Divisor: cfg.PointsDivisor,
		},
		Extract:          scraper.ExtractOptions{CleanOpponent: flagCleanOpponent},
		SkipUnrecognized: flagSkipUnrecognized,
	})

	logger.Debug("Starting run", logger.Fields{
		"years":    flagYears,
		"weeks":    fmt.Sprintf("%d-%d", cfg.FirstWeek, cfg.LastWeek),
		"rules":    cfg.Rules,
		"data_dir": store.Dir(),
	})

	result, err := run(cmd.Context(), sc, store, flagYears, cfg.Weeks(), flagWriteWeeks)
	logger.Info("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	if err != nil {
		return err
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

// run processes the seasons one after another. A failing season stops the
// run.
func run(ctx context.Context, sc WeekScraper, store *storage.Storage, years, weeks []int, writeWeeks bool) (*OutputResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	result := &OutputResult{}
	for _, year := range years {
		season, err := runSeason(ctx, sc, store, year, weeks, writeWeeks)
		if err != nil {
			logger.Error("Season failed", logger.Fields{"year": year}, err)
			return nil, err
		}

		logger.Info("Season written", logger.Fields{
			"year": year,
			"rows": season.Rows,
			"path": season.Path,
		})
		result.Seasons = append(result.Seasons, *season)
		result.TotalRows += season.Rows
	}

	result.FinishedAt = time.Now().UTC()
	return result, nil
}

// Execute runs the CLI
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = NewRootCmd(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
