package notification

import "errors"

var (
	ErrValidation      = errors.New("toUid and requestId are required")
	ErrNotFound        = errors.New("notification not found")
	ErrRequestNotFound = errors.New("blood request not found")
	ErrRequestNotOpen  = errors.New("only open requests can be sent")
)
