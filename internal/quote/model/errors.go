package model

import "errors"

var (
	// ErrQuoteNotFound indicates that the requested quote does not exist.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrInvalidQuoteText indicates that the quote text fails format constraints.
	ErrInvalidQuoteText = errors.New("invalid quote text")
	// ErrAuthorNotMember indicates that the attributed author is not a teammate.
	ErrAuthorNotMember = errors.New("quote author is not a member of the team")
)
