package services

import "errors"

var (
	// ErrInvalidInput rejects a request payload before anything is persisted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOrderNotFound is returned for an unknown order id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderFinal rejects a status transition out of a terminal state.
	ErrOrderFinal = errors.New("order is in a terminal state")

	// ErrUserNotFound is returned when the identity provider has no profile
	// for the given user id.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotification wraps identity-lookup and email-dispatch failures.
	ErrNotification = errors.New("order confirmation could not be sent")
)
