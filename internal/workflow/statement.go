package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/validation"
)

// StatementAPI is the slice of the API client the statement session
// uses.
type StatementAPI interface {
	CreateStatement(ctx context.Context, input model.StatementInput) (*model.Statement, error)
	SchedulePayment(ctx context.Context, statementID int, scheduledDate string) (*model.Statement, error)
}

// StatementSession drives the dashboard's "enter statement data" and
// "schedule payment" flows.
type StatementSession struct {
	api       StatementAPI
	presenter Presenter
	now       func() time.Time
	form      model.StatementInput
	cardName  string
	state     State
}

// StatementSessionOption configures a StatementSession.
type StatementSessionOption func(*StatementSession)

// WithStatementClock overrides the session clock, mainly for tests.
func WithStatementClock(now func() time.Time) StatementSessionOption {
	return func(s *StatementSession) {
		s.now = now
	}
}

// NewStatementSession creates a closed session.
func NewStatementSession(api StatementAPI, presenter Presenter, opts ...StatementSessionOption) *StatementSession {
	s := &StatementSession{
		api:       api,
		presenter: presenter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current session state.
func (s *StatementSession) State() State {
	return s.state
}

// Form returns the current form contents.
func (s *StatementSession) Form() model.StatementInput {
	return s.form
}

// CardName returns the display name of the card the form is open for.
func (s *StatementSession) CardName() string {
	return s.cardName
}

// OpenFor opens the entry form for a card with the statement date
// defaulted to today and everything else blank.
func (s *StatementSession) OpenFor(card model.Card) {
	s.state = StateOpen
	s.cardName = card.Name
	s.form = model.StatementInput{
		CardID:        card.ID,
		StatementDate: s.now().Format(model.DateFormat),
	}
	s.presenter.ClearFieldErrors()
}

// Close abandons the form.
func (s *StatementSession) Close() {
	s.state = StateClosed
	s.cardName = ""
	s.form = model.StatementInput{}
	s.presenter.ClearFieldErrors()
}

// Submit validates and records the statement. The server assigns status
// "pending". Returns true when the statement was created and the form
// closed.
func (s *StatementSession) Submit(ctx context.Context, input model.StatementInput) bool {
	if s.state != StateOpen {
		return false
	}

	s.presenter.ClearFieldErrors()
	if errs := validation.ValidateStatement(input); !errs.Valid() {
		for field, message := range errs {
			s.presenter.ShowFieldError(field, message)
		}
		return false
	}

	s.form = input
	s.state = StateSubmitting
	if _, err := s.api.CreateStatement(ctx, input); err != nil {
		s.state = StateOpen
		s.presenter.ShowNotification(userMessage(err, "Failed to create statement. Please try again."), SeverityError)
		return false
	}

	s.presenter.ShowNotification("Statement created successfully!", SeveritySuccess)
	s.Close()
	return true
}

// Schedule commits a payment date for a statement. A statement is
// scheduled at most once; there is no unscheduling flow.
func (s *StatementSession) Schedule(ctx context.Context, statementID int, date string) bool {
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		s.presenter.ShowFieldError("scheduled_payment_date", "Scheduled payment date must be a valid date (YYYY-MM-DD)")
		return false
	}

	if _, err := s.api.SchedulePayment(ctx, statementID, date); err != nil {
		s.presenter.ShowNotification(userMessage(err, "Failed to schedule payment"), SeverityError)
		return false
	}

	s.presenter.ShowNotification(fmt.Sprintf("Payment scheduled for %s", date), SeveritySuccess)
	return true
}
