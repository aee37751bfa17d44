package entities

import "errors"

var (
	ErrDateRequired       = errors.New("date is required (YYYY-MM-DD)")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidBody        = errors.New("invalid JSON body")
	ErrInvalidSymbol      = errors.New("invalid symbol")
	ErrReciprocalDisabled = errors.New("reciprocal disabled: only XXXUSD pairs are supported")
	ErrRowNotFound        = errors.New("row not found")
)
