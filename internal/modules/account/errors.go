package account

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrAccountNotFound = errors.New("account not found")
	ErrNoUsableAccount = errors.New("no usable connected account")
)
