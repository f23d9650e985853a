package domain

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateRecord = errors.New("record already exists")
	ErrSeatUnavailable = errors.New("seat(s) are not available")
)
