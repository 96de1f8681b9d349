package settings

import "errors"

var ErrValidation = errors.New("validation error")
