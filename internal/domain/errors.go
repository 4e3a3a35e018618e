package domain

import "errors"

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAccountNotFound = errors.New("payout account not found")
)

var (
	ErrCapacityExceeded      = errors.New("class capacity exceeded")
	ErrInvalidTransition     = errors.New("invalid booking transition")
	ErrAttemptAlreadyClaimed = errors.New("checkout attempt already claimed")
	ErrClassNotBookable      = errors.New("class is not open for booking")
	ErrHoldUnavailable       = errors.New("not enough seats left to hold")
)

var (
	ErrValidation = errors.New("validation error")
)
