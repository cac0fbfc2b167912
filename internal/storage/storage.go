package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/ffstats/internal/table"
)

// Storage handles persistence of stats tables
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "getting home directory")
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the data directory.
func (s *Storage) Dir() string {
	return s.dataDir
}

// SeasonPath returns the path of the season file for year.
func (s *Storage) SeasonPath(year int) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%d_data.csv", year))
}

// WeekPath returns the path of the debug file for week.
func (s *Storage) WeekPath(week int) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("week%d.csv", week))
}

// WriteSeason writes the stacked season table and returns its path.
func (s *Storage) WriteSeason(year int, t *table.Table) (string, error) {
	path := s.SeasonPath(year)
	if err := writeCSV(path, t); err != nil {
		return "", errors.Wrapf(err, "writing season %d", year)
	}
	return path, nil
}

// WriteWeek writes one week table and returns its path.
func (s *Storage) WriteWeek(week int, t *table.Table) (string, error) {
	path := s.WeekPath(week)
	if err := writeCSV(path, t); err != nil {
		return "", errors.Wrapf(err, "writing week %d", week)
	}
	return path, nil
}

func writeCSV(path string, t *table.Table) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := csv.NewWriter(f)
	if err = w.Write(t.Header()); err != nil {
		return err
	}
	for _, r := range t.Records() {
		if err = w.Write(r); err != nil {
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
