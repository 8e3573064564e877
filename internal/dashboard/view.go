// Package dashboard builds the at-a-glance views from the card and
// statement collections. Aggregation is a pure transform to plain view
// structs; presentation adapters decide how to draw them.
package dashboard

import "time"

// View names used with the Renderer interface.
const (
	ViewUpcoming        = "upcoming-statements"
	ViewActionRequired  = "action-required"
	ViewPendingPayments = "pending-payments"
	ViewCardDetail      = "card-detail"
)

// Placeholder values shown when a card has no statement on record.
const (
	PlaceholderDate   = "---"
	PlaceholderAmount = "$ --.--"
)

// View is the fully aggregated dashboard.
type View struct {
	Detail          DetailView
	Upcoming        []UpcomingItem
	ActionRequired  []ActionItem
	PendingPayments []PendingItem
}

// UpcomingItem is one row of the upcoming statements list.
type UpcomingItem struct {
	NextStatementDate time.Time
	CardName          string
	CardID            int
}

// ActionItem is a card needing manual statement entry.
type ActionItem struct {
	CardName string
	LastFour string
	CardID   int
}

// PendingItem is one row of the pending payments list.
type PendingItem struct {
	DueDate         time.Time
	RecommendedDate time.Time
	CardName        string
	StatementID     int
	CardID          int
	Amount          float64
	Scheduled       bool
}

// DetailView is the detail pane for the selected card. Formatted
// strings carry placeholders when no statement exists, so rendering
// never has to special-case absence.
type DetailView struct {
	CardName        string
	DueDate         string
	Amount          string
	RecommendedDate string
	HasCard         bool
	HasStatement    bool
}
