package domain

import "errors"

var (
	// ErrValidation marks a request rejected because a required field is
	// missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrUserExists is returned when the username or email is already taken.
	ErrUserExists = errors.New("user with this username or email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login responses cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")

	ErrUserNotFound    = errors.New("user not found")
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotTaken is returned when another booking already holds the same
	// (service, date, time) slot.
	ErrSlotTaken = errors.New("this slot is already booked")
)
