package table

import "github.com/cockroachdb/errors"

var (
	ErrEmptyHeader      = errors.New("header has no columns")
	ErrHeaderNormalized = errors.New("header is already normalized")
	ErrShapeMismatch    = errors.New("record length does not match header")
	ErrColumnNotFound   = errors.New("column not found")
	ErrPointsParse      = errors.New("points value is not numeric")
	ErrInvalidDivisor   = errors.New("points divisor must be non-zero")
	ErrColumnMismatch   = errors.New("week tables have different columns")
	ErrNoTables         = errors.New("no week tables to concatenate")
	ErrDuplicateWeek    = errors.New("week already stored")
)
