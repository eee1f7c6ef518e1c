package service

import "errors"

// Error kinds the API layers map to response codes.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrProseNotFound = errors.New("guerilla prose not found")
	ErrEmailTaken    = errors.New("email already registered")
)
