package dashboard

import (
	"log/slog"
	"sort"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/dateutil"
	"github.com/cardkeeper/cardkeeper/internal/model"
)

// upcomingLimit caps the upcoming statements list.
const upcomingLimit = 5

// recentStatementWindow is how far back a statement still counts as
// "entered": a card with no statement inside this window needs data
// entry.
const recentStatementWindow = 32 * 24 * time.Hour

// Aggregate builds the dashboard view from the current collections.
// Card order is preserved wherever the rules call for original order.
func Aggregate(cards []model.Card, statements []model.Statement, now time.Time) View {
	return View{
		Upcoming:        upcomingStatements(cards, now),
		ActionRequired:  actionRequired(cards, statements, now),
		PendingPayments: pendingPayments(cards, statements),
		Detail:          detailView(cards, statements),
	}
}

func upcomingStatements(cards []model.Card, now time.Time) []UpcomingItem {
	items := make([]UpcomingItem, 0, len(cards))
	for _, card := range cards {
		items = append(items, UpcomingItem{
			CardID:            card.ID,
			CardName:          card.Name,
			NextStatementDate: dateutil.NextStatementDate(card.StatementDay, now),
		})
	}

	// Stable keeps original card order for same-day statements.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NextStatementDate.Before(items[j].NextStatementDate)
	})

	if len(items) > upcomingLimit {
		items = items[:upcomingLimit]
	}
	return items
}

func actionRequired(cards []model.Card, statements []model.Statement, now time.Time) []ActionItem {
	items := make([]ActionItem, 0)
	for _, card := range cards {
		if hasRecentStatement(card.ID, statements, now) {
			continue
		}
		items = append(items, ActionItem{
			CardID:   card.ID,
			CardName: card.Name,
			LastFour: card.LastFour,
		})
	}
	return items
}

func hasRecentStatement(cardID int, statements []model.Statement, now time.Time) bool {
	for _, stmt := range statements {
		if stmt.CardID != cardID {
			continue
		}
		statementDate, err := time.Parse(model.DateFormat, stmt.StatementDate)
		if err != nil {
			slog.Warn("skipping statement with unparseable date",
				"statement_id", stmt.ID, "statement_date", stmt.StatementDate)
			continue
		}
		if now.Sub(statementDate) <= recentStatementWindow {
			return true
		}
	}
	return false
}

func pendingPayments(cards []model.Card, statements []model.Statement) []PendingItem {
	byID := make(map[int]model.Card, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	pending := make([]model.Statement, 0)
	for _, stmt := range statements {
		if stmt.IsPending() {
			pending = append(pending, stmt)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate < pending[j].DueDate
	})

	items := make([]PendingItem, 0, len(pending))
	for _, stmt := range pending {
		card, ok := byID[stmt.CardID]
		if !ok {
			// A statement whose card is gone is dropped from the view;
			// deletion cascades should make this rare.
			slog.Warn("skipping pending statement with no matching card",
				"statement_id", stmt.ID, "card_id", stmt.CardID)
			continue
		}
		dueDate, err := time.Parse(model.DateFormat, stmt.DueDate)
		if err != nil {
			slog.Warn("skipping pending statement with unparseable due date",
				"statement_id", stmt.ID, "due_date", stmt.DueDate)
			continue
		}
		items = append(items, PendingItem{
			StatementID:     stmt.ID,
			CardID:          card.ID,
			CardName:        card.Name,
			Amount:          stmt.Amount,
			DueDate:         dueDate,
			RecommendedDate: dateutil.RecommendedPaymentDate(dueDate),
			Scheduled:       stmt.IsScheduled(),
		})
	}
	return items
}

func detailView(cards []model.Card, statements []model.Statement) DetailView {
	if len(cards) == 0 {
		return DetailView{
			DueDate: PlaceholderDate,
			Amount:  PlaceholderAmount,
		}
	}

	selected := cards[0]
	for _, card := range cards {
		if cardHasPendingStatement(card.ID, statements) {
			selected = card
			break
		}
	}

	view := DetailView{
		HasCard:  true,
		CardName: selected.Name,
		DueDate:  PlaceholderDate,
		Amount:   PlaceholderAmount,
	}

	latest := latestStatement(selected.ID, statements)
	if latest == nil {
		return view
	}

	view.HasStatement = true
	view.Amount = dateutil.FormatCurrency(latest.Amount)
	if dueDate, err := time.Parse(model.DateFormat, latest.DueDate); err == nil {
		view.DueDate = dateutil.FormatShortDate(dueDate)
		view.RecommendedDate = dateutil.FormatShortDate(dateutil.RecommendedPaymentDate(dueDate))
	}
	return view
}

func cardHasPendingStatement(cardID int, statements []model.Statement) bool {
	for _, stmt := range statements {
		if stmt.CardID == cardID && stmt.IsPending() {
			return true
		}
	}
	return false
}

// latestStatement returns the card's most recent statement by statement
// date, or nil when none exists.
func latestStatement(cardID int, statements []model.Statement) *model.Statement {
	var latest *model.Statement
	for i := range statements {
		stmt := &statements[i]
		if stmt.CardID != cardID {
			continue
		}
		if latest == nil || stmt.StatementDate > latest.StatementDate {
			latest = stmt
		}
	}
	return latest
}
