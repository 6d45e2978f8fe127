package donor

import "errors"

var ErrValidation = errors.New("validation error")
