package workflow

import (
	"context"
	"testing"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementSessionOpenForDefaultsDate(t *testing.T) {
	session := NewStatementSession(newFakeAPI(), newRecordingPresenter(), WithStatementClock(testClock))

	session.OpenFor(model.Card{ID: 3, Name: "Amex Gold"})

	assert.Equal(t, StateOpen, session.State())
	assert.Equal(t, "Amex Gold", session.CardName())
	assert.Equal(t, 3, session.Form().CardID)
	assert.Equal(t, "2024-06-15", session.Form().StatementDate)
	assert.Empty(t, session.Form().DueDate)
	assert.Zero(t, session.Form().Amount)
}

func TestStatementSessionSubmit(t *testing.T) {
	backend := newFakeAPI()
	presenter := newRecordingPresenter()
	session := NewStatementSession(backend, presenter, WithStatementClock(testClock))

	session.OpenFor(model.Card{ID: 3, Name: "Amex Gold"})
	saved := session.Submit(context.Background(), model.StatementInput{
		CardID:        3,
		StatementDate: "2024-06-15",
		DueDate:       "2024-07-10",
		Amount:        812.40,
	})

	require.True(t, saved)
	assert.Equal(t, StateClosed, session.State())
	require.Len(t, backend.statements, 1)
	assert.Equal(t, model.StatusPending, backend.statements[0].Status)

	last := presenter.lastNotification()
	require.NotNil(t, last)
	assert.Equal(t, SeveritySuccess, last.severity)
}

func TestStatementSessionRejectsDueBeforeStatement(t *testing.T) {
	backend := newFakeAPI()
	presenter := newRecordingPresenter()
	session := NewStatementSession(backend, presenter, WithStatementClock(testClock))

	session.OpenFor(model.Card{ID: 3, Name: "Amex Gold"})
	saved := session.Submit(context.Background(), model.StatementInput{
		CardID:        3,
		StatementDate: "2024-06-15",
		DueDate:       "2024-06-15",
		Amount:        10,
	})

	assert.False(t, saved)
	assert.Equal(t, StateOpen, session.State())
	assert.Empty(t, backend.statements)
	assert.Contains(t, presenter.fieldErrors, "due_date")
}

func TestStatementSessionSchedule(t *testing.T) {
	backend := newFakeAPI()
	backend.statements = []model.Statement{{ID: 8, CardID: 1, Status: model.StatusPending}}
	presenter := newRecordingPresenter()
	session := NewStatementSession(backend, presenter, WithStatementClock(testClock))

	assert.True(t, session.Schedule(context.Background(), 8, "2024-06-20"))
	require.NotNil(t, backend.statements[0].ScheduledPaymentDate)
	assert.Equal(t, "2024-06-20", *backend.statements[0].ScheduledPaymentDate)

	assert.False(t, session.Schedule(context.Background(), 8, "20-06-2024"))
	assert.Contains(t, presenter.fieldErrors, "scheduled_payment_date")
}

func TestStatementSessionScheduleFailureNotifies(t *testing.T) {
	backend := newFakeAPI()
	presenter := newRecordingPresenter()
	session := NewStatementSession(backend, presenter, WithStatementClock(testClock))

	backend.failNext(serverError("statement already scheduled"))
	assert.False(t, session.Schedule(context.Background(), 8, "2024-06-20"))

	last := presenter.lastNotification()
	require.NotNil(t, last)
	assert.Equal(t, "statement already scheduled", last.message)
}
