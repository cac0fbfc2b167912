// Package cli implements the command-line interface for ffstats.
//
// The cli package provides the Cobra-based root command. It loops over the
// requested seasons and weeks in order, scrapes each week into a table, stacks
// the weeks of a season, and writes one CSV per season. A run summary is
// printed as text or JSON once every season has been written.
package cli
