package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pfrederiksen/ffstats/internal/table"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return rows
}

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		table.Header{"Player", "Team", "Opponent", "Location", "Pts*", "Week"},
		[]table.Record{
			{"Russell Wilson", "SEA", "LAR", "home", "15.50", "3"},
			{"Le'Veon Bell, Jr", "PIT", "@CIN", "away", "21.10", "3"},
		},
	)
	if err != nil {
		t.Fatalf("table.New() error: %v", err)
	}
	return tbl
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestNew_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := New("~/ffstats")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if want := filepath.Join(home, "ffstats"); s.Dir() != want {
		t.Errorf("Dir() = %q, want %q", s.Dir(), want)
	}
}

func TestWriteSeason(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	path, err := s.WriteSeason(2016, sampleTable(t))
	if err != nil {
		t.Fatalf("WriteSeason() error: %v", err)
	}
	if filepath.Base(path) != "2016_data.csv" {
		t.Errorf("path = %q, want 2016_data.csv", path)
	}

	want := [][]string{
		{"Player", "Team", "Opponent", "Location", "Pts*", "Week"},
		{"Russell Wilson", "SEA", "LAR", "home", "15.50", "3"},
		{"Le'Veon Bell, Jr", "PIT", "@CIN", "away", "21.10", "3"},
	}
	if got := readCSV(t, path); !reflect.DeepEqual(got, want) {
		t.Errorf("file rows = %q, want %q", got, want)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}
}

func TestWriteWeek(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	path, err := s.WriteWeek(3, sampleTable(t))
	if err != nil {
		t.Fatalf("WriteWeek() error: %v", err)
	}
	if path != s.WeekPath(3) || filepath.Base(path) != "week3.csv" {
		t.Errorf("path = %q", path)
	}
	if rows := readCSV(t, path); len(rows) != 3 {
		t.Errorf("file has %d rows, want 3", len(rows))
	}
}

func TestWriteSeason_Overwrites(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := os.WriteFile(s.SeasonPath(2017), []byte("stale\n"), 0644); err != nil {
		t.Fatal(err)
	}
	path, err := s.WriteSeason(2017, sampleTable(t))
	if err != nil {
		t.Fatalf("WriteSeason() error: %v", err)
	}
	if rows := readCSV(t, path); rows[0][0] != "Player" {
		t.Errorf("first row = %q, want header", rows[0])
	}
}

func TestWriteSeason_MissingDir(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}

	if _, err := s.WriteSeason(2016, sampleTable(t)); err == nil {
		t.Error("WriteSeason() expected error when directory is gone")
	}
}
