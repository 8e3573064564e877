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

const statementColumns = `id, card_id, statement_date, due_date, amount, status,
	notified_statement, notified_payment, reviewed_at, scheduled_payment_date,
	created_at, updated_at`

// ListStatements returns all statements ordered by due date descending.
func (s *SQLiteStorage) ListStatements(ctx context.Context) ([]model.Statement, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+statementColumns+` FROM statements ORDER BY due_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	statements := []model.Statement{}
	for rows.Next() {
		stmt, scanErr := scanStatement(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		statements = append(statements, *stmt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate statements: %w", err)
	}
	return statements, nil
}

// GetStatement returns a single statement, or common.ErrNotFound.
func (s *SQLiteStorage) GetStatement(ctx context.Context, id int) (*model.Statement, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+statementColumns+` FROM statements WHERE id = ?`, id)
	stmt, err := scanStatement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("statement %d: %w", id, common.ErrNotFound)
	}
	return stmt, err
}

// CreateStatement inserts a statement and fills its ID and timestamps.
// An empty status defaults to pending.
func (s *SQLiteStorage) CreateStatement(ctx context.Context, stmt *model.Statement) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if stmt.Status == "" {
		stmt.Status = model.StatusPending
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO statements (card_id, statement_date, due_date, amount, status,
			notified_statement, notified_payment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stmt.CardID, stmt.StatementDate, stmt.DueDate, stmt.Amount, stmt.Status,
		stmt.NotifiedStatement, stmt.NotifiedPayment, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert statement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get statement id: %w", err)
	}

	stmt.ID = int(id)
	stmt.CreatedAt = now
	stmt.UpdatedAt = now
	return nil
}

// SchedulePayment records the committed payment date and marks the
// statement reviewed. Returns the updated statement.
func (s *SQLiteStorage) SchedulePayment(ctx context.Context, id int, scheduledDate string) (*model.Statement, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE statements
		SET reviewed_at = ?, scheduled_payment_date = ?, updated_at = ?
		WHERE id = ?`,
		now, scheduledDate, now, id)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule payment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("statement %d: %w", id, common.ErrNotFound)
	}

	return s.GetStatement(ctx, id)
}

// UpdateStatementStatus changes a statement's status.
func (s *SQLiteStorage) UpdateStatementStatus(ctx context.Context, id int, status string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE statements SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update statement status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("statement %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// MarkNotified records that a reminder of the given kind went out.
// kind is either "statement" or "payment".
func (s *SQLiteStorage) MarkNotified(ctx context.Context, id int, kind string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var column string
	switch kind {
	case "statement":
		column = "notified_statement"
	case "payment":
		column = "notified_payment"
	default:
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE statements SET `+column+` = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark statement notified: %w", err)
	}
	return nil
}

// StatementCountForCard counts a card's statements.
func (s *SQLiteStorage) StatementCountForCard(ctx context.Context, cardID int) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM statements WHERE card_id = ?`, cardID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count statements: %w", err)
	}
	return count, nil
}

func scanStatement(row rowScanner) (*model.Statement, error) {
	var stmt model.Statement
	var reviewedAt sql.NullTime
	var scheduledDate sql.NullString

	err := row.Scan(
		&stmt.ID,
		&stmt.CardID,
		&stmt.StatementDate,
		&stmt.DueDate,
		&stmt.Amount,
		&stmt.Status,
		&stmt.NotifiedStatement,
		&stmt.NotifiedPayment,
		&reviewedAt,
		&scheduledDate,
		&stmt.CreatedAt,
		&stmt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan statement: %w", err)
	}

	if reviewedAt.Valid {
		stmt.ReviewedAt = &reviewedAt.Time
	}
	if scheduledDate.Valid {
		stmt.ScheduledPaymentDate = &scheduledDate.String
	}
	return &stmt, nil
}
