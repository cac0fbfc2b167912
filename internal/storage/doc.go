// Package storage writes week and season tables to CSV files.
//
// Season files are named <year>_data.csv and optional per-week debug files
// week<N>.csv, both inside the configured data directory. Files carry a header
// row followed by one line per record and no index column. Each file is
// written to a temporary name first and renamed into place.
package storage
