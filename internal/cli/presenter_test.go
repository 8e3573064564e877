package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/dashboard"
	"github.com/cardkeeper/cardkeeper/internal/workflow"
	"github.com/stretchr/testify/assert"
)

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePresenter(&buf)

	view := &dashboard.View{
		Upcoming: []dashboard.UpcomingItem{
			{CardID: 1, CardName: "Chase", NextStatementDate: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC)},
		},
		ActionRequired: []dashboard.ActionItem{
			{CardID: 2, CardName: "Amex", LastFour: "0005"},
		},
		PendingPayments: []dashboard.PendingItem{
			{
				StatementID:     10,
				CardName:        "Chase",
				Amount:          812.40,
				DueDate:         time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC),
				RecommendedDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
				Scheduled:       true,
			},
		},
		Detail: dashboard.DetailView{
			CardName:        "Chase",
			DueDate:         "Jul 7",
			Amount:          "$812.40",
			RecommendedDate: "Jun 30",
			HasCard:         true,
			HasStatement:    true,
		},
	}

	p.RenderDashboard(view)
	out := buf.String()

	assert.Contains(t, out, "Jul 12")
	assert.Contains(t, out, "Amex •••• 0005 needs statement data")
	assert.Contains(t, out, "$812.40")
	assert.Contains(t, out, "scheduled")
	assert.Contains(t, out, "Jun 30")
}

func TestRenderDetailWithoutCards(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePresenter(&buf)

	p.RenderView(dashboard.ViewCardDetail, dashboard.DetailView{})
	assert.Contains(t, buf.String(), "No cards on file")
}

func TestShowNotificationSeverities(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePresenter(&buf)

	p.ShowNotification("saved", workflow.SeveritySuccess)
	p.ShowNotification("boom", workflow.SeverityError)
	p.ShowNotification("fyi", workflow.SeverityInfo)

	out := buf.String()
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "fyi")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tt.input), &out, "Delete card?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "[y/N]")
	}
}
