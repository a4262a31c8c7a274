package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user document does not exist.
	ErrUserNotFound = errors.New("user not found")
)
