package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/common"
	"github.com/cardkeeper/cardkeeper/internal/model"
)

const cardColumns = `id, name, last_four, statement_day, days_until_due, credit_limit, created_at, updated_at`

// ListCards returns all cards ordered by name.
func (s *SQLiteStorage) ListCards(ctx context.Context) ([]model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+cardColumns+` FROM credit_cards ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cards := []model.Card{}
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}
	return cards, nil
}

// GetCard returns a single card, or common.ErrNotFound.
func (s *SQLiteStorage) GetCard(ctx context.Context, id int) (*model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+cardColumns+` FROM credit_cards WHERE id = ?`, id)
	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", id, common.ErrNotFound)
	}
	return card, err
}

// CreateCard inserts a card and fills its ID and timestamps.
func (s *SQLiteStorage) CreateCard(ctx context.Context, card *model.Card) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO credit_cards (name, last_four, statement_day, days_until_due, credit_limit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		card.Name, card.LastFour, card.StatementDay, card.DaysUntilDue, nullableLimit(card.CreditLimit), now, now)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get card id: %w", err)
	}

	card.ID = int(id)
	card.CreatedAt = now
	card.UpdatedAt = now
	return nil
}

// UpdateCard replaces a card's editable fields. The card must exist.
func (s *SQLiteStorage) UpdateCard(ctx context.Context, card *model.Card) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE credit_cards
		SET name = ?, last_four = ?, statement_day = ?, days_until_due = ?, credit_limit = ?, updated_at = ?
		WHERE id = ?`,
		card.Name, card.LastFour, card.StatementDay, card.DaysUntilDue, nullableLimit(card.CreditLimit), now, card.ID)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("card %d: %w", card.ID, common.ErrNotFound)
	}

	card.UpdatedAt = now
	return nil
}

// DeleteCard removes a card and, via the foreign key cascade, its
// statements. Returns how many statements went with it.
func (s *SQLiteStorage) DeleteCard(ctx context.Context, id int) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	count, err := s.StatementCountForCard(ctx, id)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("card %d: %w", id, common.ErrNotFound)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*model.Card, error) {
	var card model.Card
	var creditLimit sql.NullFloat64

	err := row.Scan(
		&card.ID,
		&card.Name,
		&card.LastFour,
		&card.StatementDay,
		&card.DaysUntilDue,
		&creditLimit,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan card: %w", err)
	}

	if creditLimit.Valid {
		card.CreditLimit = creditLimit.Float64
	}
	return &card, nil
}

// nullableLimit stores a zero credit limit as NULL, matching the "not
// applicable" rendering on the way out.
func nullableLimit(limit float64) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
