package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrEmptySnapshot = errors.New("no snapshot built yet")
	ErrNilSnapshot   = errors.New("nil snapshot")
)
