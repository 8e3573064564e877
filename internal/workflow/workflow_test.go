package workflow

import (
	"context"
	"errors"
	"sync"

	"github.com/cardkeeper/cardkeeper/internal/api"
	"github.com/cardkeeper/cardkeeper/internal/model"
)

// recordingPresenter captures everything a session reports.
type recordingPresenter struct {
	mu            sync.Mutex
	fieldErrors   map[string]string
	notifications []notification
	rendered      []string
	clears        int
}

type notification struct {
	message  string
	severity Severity
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{fieldErrors: make(map[string]string)}
}

func (p *recordingPresenter) RenderView(name string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rendered = append(p.rendered, name)
}

func (p *recordingPresenter) ShowNotification(message string, severity Severity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, notification{message, severity})
}

func (p *recordingPresenter) ShowFieldError(field, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fieldErrors[field] = message
}

func (p *recordingPresenter) ClearFieldErrors() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fieldErrors = make(map[string]string)
	p.clears++
}

func (p *recordingPresenter) lastNotification() *notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.notifications) == 0 {
		return nil
	}
	n := p.notifications[len(p.notifications)-1]
	return &n
}

// fakeAPI implements CardAPI, StatementAPI, and SettingsAPI in memory.
type fakeAPI struct {
	mu          sync.Mutex
	failWith    error
	settings    model.Settings
	cards       []model.Card
	statements  []model.Statement
	nextID      int
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1}
}

func (f *fakeAPI) ListCards(_ context.Context) ([]model.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Card(nil), f.cards...), nil
}

func (f *fakeAPI) ListStatements(_ context.Context) ([]model.Statement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Statement(nil), f.statements...), nil
}

func (f *fakeAPI) CreateCard(_ context.Context, input model.CardInput) (*model.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	card := model.Card{ID: f.nextID, Name: input.Name, LastFour: input.LastFour, CreditLimit: input.CreditLimit}
	f.nextID++
	f.cards = append(f.cards, card)
	return &card, nil
}

func (f *fakeAPI) UpdateCard(_ context.Context, id int, input model.CardInput) (*model.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.cards {
		if f.cards[i].ID == id {
			f.cards[i].Name = input.Name
			f.cards[i].LastFour = input.LastFour
			f.cards[i].CreditLimit = input.CreditLimit
			return &f.cards[i], nil
		}
	}
	return nil, errors.New("card not found")
}

func (f *fakeAPI) DeleteCard(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failWith != nil {
		return f.failWith
	}
	kept := f.cards[:0]
	for _, card := range f.cards {
		if card.ID != id {
			kept = append(kept, card)
		}
	}
	f.cards = kept
	return nil
}

func (f *fakeAPI) CreateStatement(_ context.Context, input model.StatementInput) (*model.Statement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	stmt := model.Statement{
		ID:            f.nextID,
		CardID:        input.CardID,
		StatementDate: input.StatementDate,
		DueDate:       input.DueDate,
		Amount:        input.Amount,
		Status:        model.StatusPending,
	}
	f.nextID++
	f.statements = append(f.statements, stmt)
	return &stmt, nil
}

func (f *fakeAPI) SchedulePayment(_ context.Context, statementID int, scheduledDate string) (*model.Statement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.statements {
		if f.statements[i].ID == statementID {
			f.statements[i].ScheduledPaymentDate = &scheduledDate
			return &f.statements[i], nil
		}
	}
	return nil, errors.New("statement not found")
}

func (f *fakeAPI) GetSettings(_ context.Context) (*model.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	settings := f.settings
	return &settings, nil
}

func (f *fakeAPI) PutSettings(_ context.Context, settings model.Settings) (*model.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.settings = settings
	saved := settings
	return &saved, nil
}

func (f *fakeAPI) failNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = err
}

func (f *fakeAPI) recover() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = nil
}

// serverError builds the kind of error the real client produces for a
// structured server failure.
func serverError(message string) error {
	return &api.HTTPError{Status: 400, Message: message}
}
