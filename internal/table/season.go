package table

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// WeekTables holds one Table per week, remembering the order in which weeks
// were added. It is owned by a single season loop and is not safe for
// concurrent use.
type WeekTables struct {
	order  []int
	tables map[int]*Table
}

// NewWeekTables returns an empty association.
func NewWeekTables() *WeekTables {
	return &WeekTables{tables: make(map[int]*Table)}
}

// Add stores t for week. A week can only be stored once.
func (w *WeekTables) Add(week int, t *Table) error {
	if t == nil {
		return errors.Newf("week %d: nil table", week)
	}
	if _, exists := w.tables[week]; exists {
		return errors.Wrapf(ErrDuplicateWeek, "week %d", week)
	}
	w.order = append(w.order, week)
	w.tables[week] = t
	return nil
}

// Get returns the table stored for week.
func (w *WeekTables) Get(week int) (*Table, bool) {
	t, ok := w.tables[week]
	return t, ok
}

// Weeks returns the stored weeks in insertion order.
func (w *WeekTables) Weeks() []int {
	return append([]int(nil), w.order...)
}

// Len returns the number of stored weeks.
func (w *WeekTables) Len() int {
	return len(w.order)
}

// Concat stacks every week table in ascending week order into one season
// table. Columns are aligned by name against the first week's header; a week
// whose column set differs fails with ErrColumnMismatch.
func (w *WeekTables) Concat() (*Table, error) {
	if len(w.order) == 0 {
		return nil, ErrNoTables
	}

	weeks := w.Weeks()
	sort.Ints(weeks)

	header := w.tables[weeks[0]].header
	var records []Record
	for _, week := range weeks {
		t := w.tables[week]
		perm, err := alignColumns(header, t.header)
		if err != nil {
			return nil, errors.Wrapf(err, "week %d", week)
		}
		for _, r := range t.records {
			out := make(Record, len(perm))
			for i, src := range perm {
				out[i] = r[src]
			}
			records = append(records, out)
		}
	}

	return New(header, records)
}

// alignColumns maps each column of want to its position in got. Repeated
// names are matched by occurrence, so the second "Yds" in want maps to the
// second "Yds" in got.
func alignColumns(want, got Header) ([]int, error) {
	if len(want) != len(got) {
		return nil, ErrColumnMismatch
	}

	positions := make(map[string][]int, len(got))
	for i, col := range got {
		positions[col] = append(positions[col], i)
	}

	perm := make([]int, len(want))
	for i, col := range want {
		idx := positions[col]
		if len(idx) == 0 {
			return nil, errors.Wrapf(ErrColumnMismatch, "missing column %q", col)
		}
		perm[i] = idx[0]
		positions[col] = idx[1:]
	}
	return perm, nil
}
