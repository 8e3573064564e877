package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/stretchr/testify/assert"
)

type fakeFetcher struct {
	cardsErr      error
	statementsErr error
	cards         []model.Card
	statements    []model.Statement
}

func (f *fakeFetcher) ListCards(_ context.Context) ([]model.Card, error) {
	return f.cards, f.cardsErr
}

func (f *fakeFetcher) ListStatements(_ context.Context) ([]model.Statement, error) {
	return f.statements, f.statementsErr
}

func TestLoadFetchesBothCollections(t *testing.T) {
	fetcher := &fakeFetcher{
		cards:      []model.Card{{ID: 1, Name: "A"}},
		statements: []model.Statement{{ID: 2, CardID: 1}},
	}

	cards, statements := Load(context.Background(), fetcher)
	assert.Len(t, cards, 1)
	assert.Len(t, statements, 1)
}

func TestLoadDegradesFailedFetchToEmpty(t *testing.T) {
	fetcher := &fakeFetcher{
		cardsErr:   errors.New("connection refused"),
		statements: []model.Statement{{ID: 2, CardID: 1}},
	}

	cards, statements := Load(context.Background(), fetcher)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
	assert.Len(t, statements, 1)

	fetcher = &fakeFetcher{
		cards:         []model.Card{{ID: 1, Name: "A"}},
		statementsErr: errors.New("timeout"),
	}

	cards, statements = Load(context.Background(), fetcher)
	assert.Len(t, cards, 1)
	assert.NotNil(t, statements)
	assert.Empty(t, statements)
}
