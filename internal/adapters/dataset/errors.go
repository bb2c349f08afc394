package dataset

import "errors"

var (
	// ErrOpenSource indicates the source file could not be opened or read.
	ErrOpenSource = errors.New("cannot read source table")
	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("required column missing")
)
