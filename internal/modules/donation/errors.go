package donation

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("donation not found")
)
