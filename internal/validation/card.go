// Package validation holds the pure field predicates for card input and
// webhook URLs. Validation failures never reach the network; they are
// surfaced per-field by the workflows.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/model"
)

// Card name length bounds.
const (
	MinNameLength = 2
	MaxNameLength = 255
)

var lastFourPattern = regexp.MustCompile(`^\d{4}$`)

// FieldErrors maps an input field name to a human-readable message. An
// empty map means the input is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed validation.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// ValidateCard checks a card form submission and returns the violated
// fields. Dates are expected in YYYY-MM-DD form; an unparseable date is
// reported on its own field.
func ValidateCard(input model.CardInput) FieldErrors {
	errs := make(FieldErrors)

	name := strings.TrimSpace(input.Name)
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		errs["name"] = "Card name must be between 2 and 255 characters"
	}

	if !lastFourPattern.MatchString(strings.TrimSpace(input.LastFour)) {
		errs["last_four"] = "Last four must be exactly 4 digits"
	}

	var statementDate, dueDate time.Time
	var statementOK, dueOK bool

	if input.StatementDate == "" {
		errs["statement_date"] = "Last statement date is required"
	} else if parsed, err := time.Parse(model.DateFormat, input.StatementDate); err != nil {
		errs["statement_date"] = "Last statement date must be a valid date (YYYY-MM-DD)"
	} else {
		statementDate, statementOK = parsed, true
	}

	if input.DueDate == "" {
		errs["due_date"] = "Last due date is required"
	} else if parsed, err := time.Parse(model.DateFormat, input.DueDate); err != nil {
		errs["due_date"] = "Last due date must be a valid date (YYYY-MM-DD)"
	} else {
		dueDate, dueOK = parsed, true
	}

	if statementOK && dueOK && !dueDate.After(statementDate) {
		errs["due_date"] = "Last due date must be after last statement date"
	}

	if input.CreditLimit < 0 {
		errs["credit_limit"] = "Credit limit must be non-negative"
	}

	return errs
}

// ValidateStatement checks a statement entry submission.
func ValidateStatement(input model.StatementInput) FieldErrors {
	errs := make(FieldErrors)

	if input.CardID <= 0 {
		errs["card_id"] = "Card is required"
	}
	if input.Amount < 0 {
		errs["amount"] = "Amount must be non-negative"
	}

	var statementDate, dueDate time.Time
	var statementOK, dueOK bool

	if input.StatementDate == "" {
		errs["statement_date"] = "Statement date is required"
	} else if parsed, err := time.Parse(model.DateFormat, input.StatementDate); err != nil {
		errs["statement_date"] = "Statement date must be a valid date (YYYY-MM-DD)"
	} else {
		statementDate, statementOK = parsed, true
	}

	if input.DueDate == "" {
		errs["due_date"] = "Due date is required"
	} else if parsed, err := time.Parse(model.DateFormat, input.DueDate); err != nil {
		errs["due_date"] = "Due date must be a valid date (YYYY-MM-DD)"
	} else {
		dueDate, dueOK = parsed, true
	}

	if statementOK && dueOK && !dueDate.After(statementDate) {
		errs["due_date"] = "Due date must be after statement date"
	}

	return errs
}
