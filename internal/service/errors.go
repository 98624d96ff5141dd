package service

import "errors"

// Validation failures for contact submissions.
var (
	ErrNameRequired  = errors.New("name required")
	ErrEmailRequired = errors.New("email required")
)

// Auth failures.
var (
	// ErrInvalidCredential is returned when a presented password does not
	// match the current admin password.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrPasswordTooShort is returned when a new password fails the length policy.
	ErrPasswordTooShort = errors.New("password too short")
)
