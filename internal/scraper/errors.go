package scraper

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrFetchStatus      = errors.New("unexpected status code")
	ErrNoTable          = errors.New("no table found")
	ErrNoHeaderRow      = errors.New("table has no header row")
	ErrUnrecognizedCell = errors.New("unrecognized cell format")
)

// UnrecognizedCellError reports a cell whose shape was detected but whose
// text did not match the expected pattern.
type UnrecognizedCellError struct {
	Kind CellKind
	Text string
}

func (e *UnrecognizedCellError) Error() string {
	return fmt.Sprintf("unrecognized %s cell %q", e.Kind, e.Text)
}

func (e *UnrecognizedCellError) Unwrap() error {
	return ErrUnrecognizedCell
}
