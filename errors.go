package realty

import (
	"errors"
	"fmt"
)

var (
	// ErrInputShape matches every *InputShapeError with errors.Is.
	ErrInputShape = errors.New("input shape error")
	// ErrAmbiguousDate matches every *AmbiguousDateError with errors.Is.
	ErrAmbiguousDate = errors.New("ambiguous date")
)

// InputShapeError reports a required column that is missing from a table, or
// a cell whose value cannot be read as the column's kind.
type InputShapeError struct {
	Column string
	Row    int  // -1 when the whole column is missing
	Want   Kind // kind the column is read as
	Got    any  // offending value, nil for a missing column
}

func (e *InputShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("missing required column %q (%s)", e.Column, e.Want)
	}
	return fmt.Sprintf("column %q row %d: cannot read %T %v as %s", e.Column, e.Row, e.Got, e.Got, e.Want)
}

func (e *InputShapeError) Is(target error) bool { return target == ErrInputShape }

// AmbiguousDateError reports a value that cannot be read as a single calendar date.
type AmbiguousDateError struct {
	Value any
	Err   error
}

func (e *AmbiguousDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read %v as a date: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("cannot read %T %v as a date", e.Value, e.Value)
}

func (e *AmbiguousDateError) Is(target error) bool { return target == ErrAmbiguousDate }

func (e *AmbiguousDateError) Unwrap() error { return e.Err }

func missingColumn(c Column) error {
	return &InputShapeError{Column: c.Name, Row: -1, Want: c.Kind}
}
