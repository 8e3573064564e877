package model

import "time"

// Statement statuses.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// DateFormat is the wire format for statement and due dates.
const DateFormat = "2006-01-02"

// Statement represents one billing cycle's record for a card.
type Statement struct {
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	ScheduledPaymentDate *string    `json:"scheduled_payment_date,omitempty"`
	StatementDate        string     `json:"statement_date"`
	DueDate              string     `json:"due_date"`
	Status               string     `json:"status"`
	ID                   int        `json:"id"`
	CardID               int        `json:"card_id"`
	Amount               float64    `json:"amount"`
	NotifiedStatement    bool       `json:"notified_statement"`
	NotifiedPayment      bool       `json:"notified_payment"`
}

// IsPending reports whether the statement still awaits payment.
func (s *Statement) IsPending() bool {
	return s.Status == StatusPending
}

// IsScheduled reports whether a payment date has been committed.
// Scheduling is one-way; there is no unscheduling operation.
func (s *Statement) IsScheduled() bool {
	return s.ScheduledPaymentDate != nil && *s.ScheduledPaymentDate != ""
}

// StatementInput carries the fields submitted when entering statement
// data for a card.
type StatementInput struct {
	StatementDate string  `json:"statement_date"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	CardID        int     `json:"card_id"`
	Amount        float64 `json:"amount"`
}
