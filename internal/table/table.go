package table

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Record is one player-week: one value per header column.
type Record []string

// Table is a set of Records bound to a Header. A Table is not modified after
// it has been built.
type Table struct {
	header  Header
	records []Record
}

// PointsConversion describes the unit conversion applied to the points
// column. The site publishes fractional points as integers scaled by Divisor.
type PointsConversion struct {
	Column  string
	Divisor float64
}

// DefaultPoints converts "Pts*" from hundredths.
var DefaultPoints = PointsConversion{Column: ColumnPoints, Divisor: 100}

// New binds records to header. Every record must have exactly one value per
// column.
func New(header Header, records []Record) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}

	rows := make([]Record, len(records))
	for i, r := range records {
		if len(r) != len(header) {
			return nil, errors.Wrapf(ErrShapeMismatch, "row %d has %d fields, header has %d", i, len(r), len(header))
		}
		rows[i] = append(Record(nil), r...)
	}

	return &Table{header: header.Clone(), records: rows}, nil
}

// Assemble builds a week table and applies the points conversion to it.
// A non-numeric points value fails the whole table.
func Assemble(header Header, records []Record, points PointsConversion) (*Table, error) {
	t, err := New(header, records)
	if err != nil {
		return nil, err
	}
	if err := t.convertPoints(points); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) convertPoints(pc PointsConversion) error {
	if pc.Divisor == 0 {
		return ErrInvalidDivisor
	}
	col := t.header.Index(pc.Column)
	if col < 0 {
		return errors.Wrapf(ErrColumnNotFound, "%q", pc.Column)
	}

	for i, r := range t.records {
		raw := strings.TrimSpace(r[col])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Wrapf(ErrPointsParse, "row %d value %q", i, r[col])
		}
		r[col] = FormatPoints(v / pc.Divisor)
	}
	return nil
}

// FormatPoints renders v with at least two decimal places.
func FormatPoints(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	switch {
	case dot < 0:
		return s + ".00"
	case len(s)-dot-1 == 1:
		return s + "0"
	}
	return s
}

// Header returns a copy of the table's columns.
func (t *Table) Header() Header {
	return t.header.Clone()
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Row returns a copy of record i.
func (t *Table) Row(i int) Record {
	return append(Record(nil), t.records[i]...)
}

// Records returns a copy of every record in order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	for i := range t.records {
		out[i] = t.Row(i)
	}
	return out
}

// Column returns the values of the first column called name.
func (t *Table) Column(name string) ([]string, error) {
	col := t.header.Index(name)
	if col < 0 {
		return nil, errors.Wrapf(ErrColumnNotFound, "%q", name)
	}
	out := make([]string, len(t.records))
	for i, r := range t.records {
		out[i] = r[col]
	}
	return out, nil
}
