package domain

import "errors"

// Sentinel errors for the person domain. Use errors.Is() to check these.
var (
	// ErrPersonNotFound indicates the requested person does not exist.
	ErrPersonNotFound = errors.New("person not found")

	// ErrInvalidPerson indicates a person id or field violates domain constraints.
	ErrInvalidPerson = errors.New("invalid person")

	// ErrEmailTaken indicates another person already uses the email address.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPersonInUse indicates the person still owns orders and cannot be deleted.
	ErrPersonInUse = errors.New("person still has orders")
)
