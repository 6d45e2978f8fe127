package request

import "errors"

var (
	ErrValidation = errors.New("bloodGroup is required")
	ErrNotFound   = errors.New("request not found")
)
