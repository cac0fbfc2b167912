package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// SeasonResult describes one written season.
type SeasonResult struct {
	Year      int      `json:"year"`
	Weeks     []int    `json:"weeks"`
	Rows      int      `json:"rows"`
	Path      string   `json:"path"`
	WeekFiles []string `json:"week_files,omitempty"`
}

// OutputResult contains data to be output
type OutputResult struct {
	FinishedAt time.Time      `json:"finished_at"`
	Seasons    []SeasonResult `json:"seasons"`
	TotalRows  int            `json:"total_rows"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return errors.Newf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if len(result.Seasons) == 0 {
		fmt.Fprintln(w, "No seasons written.")
		return nil
	}

	for _, s := range result.Seasons {
		fmt.Fprintf(w, "%d: %d rows from %d weeks -> %s\n", s.Year, s.Rows, len(s.Weeks), s.Path)
		if verbose {
			for _, path := range s.WeekFiles {
				fmt.Fprintf(w, "     week file: %s\n", path)
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d rows across %d seasons\n", result.TotalRows, len(result.Seasons))

	return nil
}
