// Package model provides domain models and DTOs for the quote module.
package model

import "time"

// AddQuoteRequest represents the request to post a new quote. The quote
// is attributed to a teammate, not necessarily the submitter. CreatedAt
// is the client-side submission timestamp; the server time is used when
// it is absent.
type AddQuoteRequest struct {
	Text      string     `json:"text" binding:"required"`
	AuthorUID string     `json:"author_uid" binding:"required"`
	CreatedAt *time.Time `json:"created_at"`
}

// DeleteQuoteRequest represents the request to delete a quote.
type DeleteQuoteRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

// RateQuoteRequest represents the toggle-rating request.
type RateQuoteRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

// RateQuoteResponse represents the rating state after a toggle.
type RateQuoteResponse struct {
	QuoteID string `json:"quoteId"`
	Rating  int    `json:"rating"`
	Rated   bool   `json:"rated"`
}
