package validation

import (
	"strings"
	"testing"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/stretchr/testify/assert"
)

func validInput() model.CardInput {
	return model.CardInput{
		Name:          "Chase Sapphire",
		LastFour:      "1234",
		StatementDate: "2024-03-01",
		DueDate:       "2024-03-25",
		CreditLimit:   5000,
	}
}

func TestValidateCard(t *testing.T) {
	tests := []struct {
		mutate    func(*model.CardInput)
		name      string
		wantField string
	}{
		{name: "valid input", mutate: func(_ *model.CardInput) {}, wantField: ""},
		{
			name:      "name too short",
			mutate:    func(in *model.CardInput) { in.Name = "A" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(in *model.CardInput) { in.Name = strings.Repeat("x", 256) },
			wantField: "name",
		},
		{
			name:      "last four with letter",
			mutate:    func(in *model.CardInput) { in.LastFour = "12a4" },
			wantField: "last_four",
		},
		{
			name:      "last four too short",
			mutate:    func(in *model.CardInput) { in.LastFour = "123" },
			wantField: "last_four",
		},
		{
			name:      "missing statement date",
			mutate:    func(in *model.CardInput) { in.StatementDate = "" },
			wantField: "statement_date",
		},
		{
			name:      "missing due date",
			mutate:    func(in *model.CardInput) { in.DueDate = "" },
			wantField: "due_date",
		},
		{
			name:      "due date equals statement date",
			mutate:    func(in *model.CardInput) { in.DueDate = in.StatementDate },
			wantField: "due_date",
		},
		{
			name: "due date before statement date",
			mutate: func(in *model.CardInput) {
				in.StatementDate = "2024-03-25"
				in.DueDate = "2024-03-01"
			},
			wantField: "due_date",
		},
		{
			name:      "unparseable due date",
			mutate:    func(in *model.CardInput) { in.DueDate = "25-03-2024" },
			wantField: "due_date",
		},
		{
			name:      "negative credit limit",
			mutate:    func(in *model.CardInput) { in.CreditLimit = -1 },
			wantField: "credit_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			errs := ValidateCard(input)
			if tt.wantField == "" {
				assert.True(t, errs.Valid(), "expected valid, got %v", errs)
				return
			}
			assert.False(t, errs.Valid())
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidateCardBoundaryNames(t *testing.T) {
	for _, length := range []int{2, 255} {
		input := validInput()
		input.Name = strings.Repeat("x", length)
		assert.True(t, ValidateCard(input).Valid(), "length %d should be accepted", length)
	}
}

func TestValidateCardZeroCreditLimitIsValid(t *testing.T) {
	input := validInput()
	input.CreditLimit = 0
	assert.True(t, ValidateCard(input).Valid())
}

func TestValidateStatement(t *testing.T) {
	valid := model.StatementInput{
		CardID:        1,
		StatementDate: "2024-03-01",
		DueDate:       "2024-03-25",
		Amount:        120.50,
	}
	assert.True(t, ValidateStatement(valid).Valid())

	missingCard := valid
	missingCard.CardID = 0
	assert.Contains(t, ValidateStatement(missingCard), "card_id")

	badOrder := valid
	badOrder.DueDate = "2024-02-01"
	assert.Contains(t, ValidateStatement(badOrder), "due_date")

	negative := valid
	negative.Amount = -5
	assert.Contains(t, ValidateStatement(negative), "amount")
}
