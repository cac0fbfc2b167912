package cli

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/ffstats/internal/logger"
	"github.com/pfrederiksen/ffstats/internal/storage"
	"github.com/pfrederiksen/ffstats/internal/table"
)

// WeekScraper produces the table for one week of a season.
type WeekScraper interface {
	ScrapeWeek(ctx context.Context, year, week int) (*table.Table, error)
}

// runSeason scrapes every week of year in order and writes the season file.
// The first failing week aborts the season.
func runSeason(ctx context.Context, sc WeekScraper, store *storage.Storage, year int, weeks []int, writeWeeks bool) (*SeasonResult, error) {
	tables := table.NewWeekTables()
	result := &SeasonResult{Year: year}

	for _, week := range weeks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t, err := sc.ScrapeWeek(ctx, year, week)
		if err != nil {
			return nil, errors.Wrapf(err, "year %d week %d", year, week)
		}
		if err := tables.Add(week, t); err != nil {
			return nil, err
		}

		logger.Info("Week parsed", logger.Fields{
			"year": year,
			"week": week,
			"rows": t.Len(),
		})

		if writeWeeks {
			path, err := store.WriteWeek(week, t)
			if err != nil {
				return nil, err
			}
			result.WeekFiles = append(result.WeekFiles, path)
		}
	}

	season, err := tables.Concat()
	if err != nil {
		return nil, errors.Wrapf(err, "year %d", year)
	}

	path, err := store.WriteSeason(year, season)
	if err != nil {
		return nil, err
	}

	result.Weeks = tables.Weeks()
	result.Rows = season.Len()
	result.Path = path
	return result, nil
}
