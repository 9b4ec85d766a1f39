package table

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the error wrapped by every RangeError.
	ErrOutOfRange = errors.New("out of range")

	// ErrDuplicateSymbol is returned when a character is interned twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrMalformed is returned by a Builder if the table description is not
	// usable, e.g. a production's left hand side is not a non-terminal.
	ErrMalformed = errors.New("malformed table")
)

// RangeError is reported by table lookups with an index outside of the
// configured bounds. It matches ErrOutOfRange with errors.Is.
type RangeError struct {
	Dimension string // "state", "terminal", "non-terminal" or "production"
	Index     int    // offending index
	Min, Max  int    // valid range, inclusive
	Symbol    Symbol // offending symbol, if any
}

func (e *RangeError) Error() string {
	if !e.Symbol.IsNull() {
		return fmt.Sprintf("%s %q (#%d) %s [%d,%d]", e.Dimension, e.Symbol.Char, e.Index,
			ErrOutOfRange, e.Min, e.Max)
	}
	return fmt.Sprintf("%s %d %s [%d,%d]", e.Dimension, e.Index, ErrOutOfRange, e.Min, e.Max)
}

// Unwrap makes RangeError match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func rangeError(dim string, i, min, max int) *RangeError {
	return &RangeError{Dimension: dim, Index: i, Min: min, Max: max}
}
