package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/dashboard"
	"github.com/cardkeeper/cardkeeper/internal/dateutil"
	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/validation"
)

// State is the card modal session state.
type State int

// Session states.
const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
	StateConfirmingDelete
	StateDeleting
)

// Mode distinguishes the add and edit forms.
type Mode int

// Form modes.
const (
	ModeAdd Mode = iota
	ModeEdit
)

// CardAPI is the slice of the API client the card session uses.
type CardAPI interface {
	ListCards(ctx context.Context) ([]model.Card, error)
	ListStatements(ctx context.Context) ([]model.Statement, error)
	CreateCard(ctx context.Context, input model.CardInput) (*model.Card, error)
	UpdateCard(ctx context.Context, id int, input model.CardInput) (*model.Card, error)
	DeleteCard(ctx context.Context, id int) error
}

// DeleteConfirmation is what the delete dialog displays. The statement
// count is informational only; a non-zero count never blocks deletion,
// since cascades are the server's responsibility.
type DeleteConfirmation struct {
	CardName       string
	LastFour       string
	StatementCount int
}

// CardSession orchestrates the create/edit/delete lifecycle for cards.
// It owns the current card and statement collections, which are
// wholesale-replaced on every refresh.
type CardSession struct {
	api        CardAPI
	presenter  Presenter
	now        func() time.Time
	form       model.CardInput
	cards      []model.Card
	statements []model.Statement
	state      State
	mode       Mode
	editingID  int
	deletingID int
}

// CardSessionOption configures a CardSession.
type CardSessionOption func(*CardSession)

// WithClock overrides the session clock, mainly for tests.
func WithClock(now func() time.Time) CardSessionOption {
	return func(s *CardSession) {
		s.now = now
	}
}

// NewCardSession creates a closed session.
func NewCardSession(api CardAPI, presenter Presenter, opts ...CardSessionOption) *CardSession {
	s := &CardSession{
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
func (s *CardSession) State() State {
	return s.state
}

// Mode returns the form mode; meaningful only while the form is open.
func (s *CardSession) Mode() Mode {
	return s.mode
}

// Form returns the current form contents.
func (s *CardSession) Form() model.CardInput {
	return s.form
}

// Cards returns the collection from the last refresh.
func (s *CardSession) Cards() []model.Card {
	return s.cards
}

// Statements returns the collection from the last refresh.
func (s *CardSession) Statements() []model.Statement {
	return s.statements
}

// Refresh reloads both collections. Either fetch failing degrades that
// collection to empty; the screen still renders.
func (s *CardSession) Refresh(ctx context.Context) {
	s.cards, s.statements = dashboard.Load(ctx, s.api)
}

// OpenAdd opens the form empty, with today's date as the statement
// date default.
func (s *CardSession) OpenAdd() {
	s.state = StateOpen
	s.mode = ModeAdd
	s.editingID = 0
	s.form = model.CardInput{
		StatementDate: s.now().Format(model.DateFormat),
	}
	s.presenter.ClearFieldErrors()
}

// OpenEdit opens the form pre-filled from the selected card. The raw
// statement and due dates are not stored, only statement_day and
// days_until_due, so the dates shown are reconstructed against the
// current month. This is a lossy display approximation.
func (s *CardSession) OpenEdit(cardID int) error {
	card := s.findCard(cardID)
	if card == nil {
		s.presenter.ShowNotification("Card not found", SeverityError)
		return fmt.Errorf("card %d not found", cardID)
	}

	today := s.now()
	statementDate := dateutil.NextStatementDate(card.StatementDay, time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()))
	dueDate := statementDate.AddDate(0, 0, card.DaysUntilDue)

	s.state = StateOpen
	s.mode = ModeEdit
	s.editingID = cardID
	s.form = model.CardInput{
		Name:          card.Name,
		LastFour:      card.LastFour,
		StatementDate: statementDate.Format(model.DateFormat),
		DueDate:       dueDate.Format(model.DateFormat),
		CreditLimit:   card.CreditLimit,
	}
	s.presenter.ClearFieldErrors()
	return nil
}

// Close abandons the form.
func (s *CardSession) Close() {
	s.state = StateClosed
	s.editingID = 0
	s.form = model.CardInput{}
	s.presenter.ClearFieldErrors()
}

// Submit validates and saves the form. Validation failure keeps the
// form open and reports exactly the violated fields; a submit failure
// keeps it open, re-enables the submit control, and surfaces the
// server's message when there is one. Returns true when the card was
// saved and the form closed.
func (s *CardSession) Submit(ctx context.Context, input model.CardInput) bool {
	if s.state != StateOpen {
		return false
	}

	s.presenter.ClearFieldErrors()
	if errs := validation.ValidateCard(input); !errs.Valid() {
		for field, message := range errs {
			s.presenter.ShowFieldError(field, message)
		}
		return false
	}

	s.form = input
	s.state = StateSubmitting

	var err error
	if s.mode == ModeEdit {
		_, err = s.api.UpdateCard(ctx, s.editingID, input)
	} else {
		_, err = s.api.CreateCard(ctx, input)
	}
	if err != nil {
		s.state = StateOpen
		fallback := "Failed to save credit card"
		s.presenter.ShowNotification(userMessage(err, fallback), SeverityError)
		return false
	}

	if s.mode == ModeEdit {
		s.presenter.ShowNotification("Credit card updated successfully", SeveritySuccess)
	} else {
		s.presenter.ShowNotification("Credit card created successfully", SeveritySuccess)
	}

	s.Close()
	s.Refresh(ctx)
	return true
}

// OpenDeleteConfirm opens the delete dialog for a card and returns what
// it should display.
func (s *CardSession) OpenDeleteConfirm(cardID int) (*DeleteConfirmation, error) {
	card := s.findCard(cardID)
	if card == nil {
		s.presenter.ShowNotification("Card not found", SeverityError)
		return nil, fmt.Errorf("card %d not found", cardID)
	}

	count := 0
	for _, stmt := range s.statements {
		if stmt.CardID == cardID {
			count++
		}
	}

	s.state = StateConfirmingDelete
	s.deletingID = cardID
	return &DeleteConfirmation{
		CardName:       card.Name,
		LastFour:       card.LastFour,
		StatementCount: count,
	}, nil
}

// CancelDelete closes the delete dialog without deleting.
func (s *CardSession) CancelDelete() {
	s.state = StateClosed
	s.deletingID = 0
}

// ConfirmDelete deletes the card under confirmation. Returns true when
// the delete went through.
func (s *CardSession) ConfirmDelete(ctx context.Context) bool {
	if s.state != StateConfirmingDelete || s.deletingID == 0 {
		return false
	}

	s.state = StateDeleting
	if err := s.api.DeleteCard(ctx, s.deletingID); err != nil {
		s.state = StateConfirmingDelete
		s.presenter.ShowNotification(userMessage(err, "Failed to delete credit card"), SeverityError)
		return false
	}

	s.presenter.ShowNotification("Credit card deleted successfully", SeveritySuccess)
	s.state = StateClosed
	s.deletingID = 0
	s.Refresh(ctx)
	return true
}

func (s *CardSession) findCard(cardID int) *model.Card {
	for i := range s.cards {
		if s.cards[i].ID == cardID {
			return &s.cards[i]
		}
	}
	return nil
}
