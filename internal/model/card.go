// Package model defines the core domain types shared across the application.
package model

import "time"

// Card represents a tracked credit card and its billing cycle.
//
// StatementDay and DaysUntilDue are derived server-side from the
// statement/due dates supplied at creation time; the raw dates are not
// stored.
type Card struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	LastFour     string    `json:"last_four"`
	ID           int       `json:"id"`
	StatementDay int       `json:"statement_day"`
	DaysUntilDue int       `json:"days_until_due"`
	CreditLimit  float64   `json:"credit_limit,omitempty"`
}

// CardInput carries the fields a client submits when creating or
// updating a card. The server derives statement_day and days_until_due
// from the two dates.
type CardInput struct {
	Name          string  `json:"name"`
	LastFour      string  `json:"last_four"`
	StatementDate string  `json:"statement_date"`
	DueDate       string  `json:"due_date"`
	CreditLimit   float64 `json:"credit_limit,omitempty"`
}
