package dashboard

import (
	"testing"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return now.AddDate(0, 0, offset).Format(model.DateFormat)
}

func TestUpcomingStatementsSortedAndCapped(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "A", StatementDay: 25},
		{ID: 2, Name: "B", StatementDay: 16},
		{ID: 3, Name: "C", StatementDay: 1}, // already passed, next month
		{ID: 4, Name: "D", StatementDay: 20},
		{ID: 5, Name: "E", StatementDay: 18},
		{ID: 6, Name: "F", StatementDay: 17},
	}

	view := Aggregate(cards, nil, now)

	require.Len(t, view.Upcoming, 5)
	names := make([]string, 0, 5)
	for _, item := range view.Upcoming {
		names = append(names, item.CardName)
	}
	assert.Equal(t, []string{"B", "F", "E", "D", "A"}, names)
}

func TestUpcomingStatementsTieKeepsOriginalOrder(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "First", StatementDay: 20},
		{ID: 2, Name: "Second", StatementDay: 20},
	}

	view := Aggregate(cards, nil, now)
	require.Len(t, view.Upcoming, 2)
	assert.Equal(t, "First", view.Upcoming[0].CardName)
	assert.Equal(t, "Second", view.Upcoming[1].CardName)
}

func TestActionRequiredWindow(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "Recent"},
		{ID: 2, Name: "Stale"},
		{ID: 3, Name: "Never"},
	}
	statements := []model.Statement{
		{ID: 1, CardID: 1, StatementDate: day(-31), DueDate: day(-10), Status: model.StatusPaid},
		{ID: 2, CardID: 2, StatementDate: day(-33), DueDate: day(-12), Status: model.StatusPaid},
	}

	view := Aggregate(cards, statements, now)

	require.Len(t, view.ActionRequired, 2)
	assert.Equal(t, "Stale", view.ActionRequired[0].CardName)
	assert.Equal(t, "Never", view.ActionRequired[1].CardName)
}

func TestPendingPaymentsSortedByDueDate(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}
	statements := []model.Statement{
		{ID: 1, CardID: 1, StatementDate: day(-20), DueDate: day(10), Amount: 300, Status: model.StatusPending},
		{ID: 2, CardID: 2, StatementDate: day(-15), DueDate: day(5), Amount: 120, Status: model.StatusPending},
		{ID: 3, CardID: 1, StatementDate: day(-50), DueDate: day(-25), Amount: 90, Status: model.StatusPaid},
	}

	view := Aggregate(cards, statements, now)

	require.Len(t, view.PendingPayments, 2)
	assert.Equal(t, "B", view.PendingPayments[0].CardName)
	assert.Equal(t, 120.0, view.PendingPayments[0].Amount)
	assert.Equal(t, "A", view.PendingPayments[1].CardName)

	// Recommended date is a week before due.
	first := view.PendingPayments[0]
	assert.Equal(t, first.DueDate.AddDate(0, 0, -7), first.RecommendedDate)
}

func TestPendingPaymentsSkipsOrphanedStatement(t *testing.T) {
	cards := []model.Card{{ID: 1, Name: "A"}}
	statements := []model.Statement{
		{ID: 1, CardID: 1, StatementDate: day(-5), DueDate: day(20), Amount: 50, Status: model.StatusPending},
		{ID: 2, CardID: 99, StatementDate: day(-5), DueDate: day(2), Amount: 75, Status: model.StatusPending},
	}

	view := Aggregate(cards, statements, now)

	require.Len(t, view.PendingPayments, 1)
	assert.Equal(t, 1, view.PendingPayments[0].StatementID)
}

func TestDetailPrefersCardWithPendingStatement(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "No Activity"},
		{ID: 2, Name: "Busy"},
	}
	statements := []model.Statement{
		{ID: 1, CardID: 2, StatementDate: day(-10), DueDate: day(15), Amount: 250.75, Status: model.StatusPending},
		{ID: 2, CardID: 2, StatementDate: day(-40), DueDate: day(-15), Amount: 100, Status: model.StatusPaid},
	}

	view := Aggregate(cards, statements, now)

	assert.True(t, view.Detail.HasCard)
	assert.True(t, view.Detail.HasStatement)
	assert.Equal(t, "Busy", view.Detail.CardName)
	assert.Equal(t, "$250.75", view.Detail.Amount)
	assert.NotEqual(t, PlaceholderDate, view.Detail.DueDate)
	assert.NotEmpty(t, view.Detail.RecommendedDate)
}

func TestDetailFallsBackToFirstCard(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "Quiet"},
		{ID: 2, Name: "Also Quiet"},
	}

	view := Aggregate(cards, nil, now)

	assert.True(t, view.Detail.HasCard)
	assert.False(t, view.Detail.HasStatement)
	assert.Equal(t, "Quiet", view.Detail.CardName)
	assert.Equal(t, PlaceholderDate, view.Detail.DueDate)
	assert.Equal(t, PlaceholderAmount, view.Detail.Amount)
}

func TestDetailEmptyStateWithoutCards(t *testing.T) {
	view := Aggregate(nil, nil, now)

	assert.False(t, view.Detail.HasCard)
	assert.Equal(t, PlaceholderDate, view.Detail.DueDate)
	assert.Equal(t, PlaceholderAmount, view.Detail.Amount)
}

func TestEndToEndSingleCardNoStatements(t *testing.T) {
	cards := []model.Card{{ID: 1, Name: "A", StatementDay: 15}}

	view := Aggregate(cards, nil, now)

	require.Len(t, view.ActionRequired, 1)
	assert.Equal(t, "A", view.ActionRequired[0].CardName)
	assert.Empty(t, view.PendingPayments)
	assert.Equal(t, "A", view.Detail.CardName)
	assert.Equal(t, PlaceholderDate, view.Detail.DueDate)
	assert.Equal(t, PlaceholderAmount, view.Detail.Amount)
}
