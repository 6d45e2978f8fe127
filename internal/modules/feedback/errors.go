package feedback

import "errors"

var ErrValidation = errors.New("validation error")
