package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/dateutil"
	"github.com/cardkeeper/cardkeeper/internal/model"
)

// ReminderStore is the storage surface the reminder pass needs.
type ReminderStore interface {
	ListCards(ctx context.Context) ([]model.Card, error)
	ListStatements(ctx context.Context) ([]model.Statement, error)
	MarkNotified(ctx context.Context, id int, kind string) error
}

// Sender sends reminders for a card/statement pair.
type Sender interface {
	Enabled() bool
	SendStatementReminder(ctx context.Context, card *model.Card, stmt *model.Statement) error
	SendPaymentReminder(ctx context.Context, card *model.Card, stmt *model.Statement) error
}

// ReminderResult summarizes one reminder pass.
type ReminderResult struct {
	StatementReminders int
	PaymentReminders   int
}

// RunReminders scans all statements and sends due reminders. A statement
// that has never been announced gets a statement reminder; a pending
// statement whose recommended payment date has arrived gets a payment
// reminder. Each kind is sent at most once per statement.
func RunReminders(ctx context.Context, store ReminderStore, sender Sender, now time.Time) (*ReminderResult, error) {
	result := &ReminderResult{}
	if !sender.Enabled() {
		slog.Info("reminders skipped, no webhook configured")
		return result, nil
	}

	cards, err := store.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	cardsByID := make(map[int]*model.Card, len(cards))
	for i := range cards {
		cardsByID[cards[i].ID] = &cards[i]
	}

	statements, err := store.ListStatements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := range statements {
		stmt := &statements[i]
		card, ok := cardsByID[stmt.CardID]
		if !ok {
			slog.Warn("statement references unknown card",
				"statement_id", stmt.ID,
				"card_id", stmt.CardID)
			continue
		}

		if !stmt.NotifiedStatement {
			if err := sender.SendStatementReminder(ctx, card, stmt); err != nil {
				return result, fmt.Errorf("failed to send statement reminder: %w", err)
			}
			if err := store.MarkNotified(ctx, stmt.ID, "statement"); err != nil {
				return result, err
			}
			result.StatementReminders++
		}

		if stmt.IsPending() && !stmt.NotifiedPayment && paymentDue(stmt, today) {
			if err := sender.SendPaymentReminder(ctx, card, stmt); err != nil {
				return result, fmt.Errorf("failed to send payment reminder: %w", err)
			}
			if err := store.MarkNotified(ctx, stmt.ID, "payment"); err != nil {
				return result, err
			}
			result.PaymentReminders++
		}
	}

	slog.Info("reminder pass complete",
		"statement_reminders", result.StatementReminders,
		"payment_reminders", result.PaymentReminders)
	return result, nil
}

// paymentDue reports whether today has reached the recommended payment
// date, one week ahead of the due date.
func paymentDue(stmt *model.Statement, today time.Time) bool {
	due, err := time.Parse(model.DateFormat, stmt.DueDate)
	if err != nil {
		slog.Warn("statement has unparseable due date",
			"statement_id", stmt.ID,
			"due_date", stmt.DueDate)
		return false
	}
	return !today.Before(dateutil.RecommendedPaymentDate(due))
}
