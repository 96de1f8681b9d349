package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrVenueNotFound     = errors.New("venue not found")
	ErrSlotInPast        = errors.New("time slot is in the past")
	ErrInvalidRecurrence = errors.New("invalid recurrence spec")
	ErrNoUsableAccount   = errors.New("no usable connected account")
	ErrOverbooking       = errors.New("double booking constraint violation")
	ErrUnknownBooking    = errors.New("unknown booking")
	ErrAlreadyCancelled  = errors.New("booking already cancelled")
)
