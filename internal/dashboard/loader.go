package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cardkeeper/cardkeeper/internal/model"
)

// Fetcher is the slice of the API client the dashboard needs.
type Fetcher interface {
	ListCards(ctx context.Context) ([]model.Card, error)
	ListStatements(ctx context.Context) ([]model.Statement, error)
}

// Load fetches cards and statements concurrently and returns both. A
// failed fetch degrades that collection to empty rather than failing
// the load, so the dashboard always renders.
func Load(ctx context.Context, fetcher Fetcher) ([]model.Card, []model.Statement) {
	var (
		wg         sync.WaitGroup
		cards      []model.Card
		statements []model.Statement
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fetched, err := fetcher.ListCards(ctx)
		if err != nil {
			slog.Warn("failed to fetch cards, rendering empty list", "error", err)
			return
		}
		cards = fetched
	}()
	go func() {
		defer wg.Done()
		fetched, err := fetcher.ListStatements(ctx)
		if err != nil {
			slog.Warn("failed to fetch statements, rendering empty list", "error", err)
			return
		}
		statements = fetched
	}()
	wg.Wait()

	if cards == nil {
		cards = []model.Card{}
	}
	if statements == nil {
		statements = []model.Statement{}
	}
	return cards, statements
}
