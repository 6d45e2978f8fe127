package search

import "errors"

// ErrInvalidQuery means one of the three required filters is missing.
var ErrInvalidQuery = errors.New("bloodGroup, district and division are required")
