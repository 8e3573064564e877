package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/validation"
)

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.store.ListCards(r.Context())
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeCardInput(w, r)
	if !ok {
		return
	}

	card := cardFromInput(input)
	if err := s.store.CreateCard(r.Context(), card); err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	input, ok := decodeCardInput(w, r)
	if !ok {
		return
	}

	card := cardFromInput(input)
	card.ID = id
	if err := s.store.UpdateCard(r.Context(), card); err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.DeleteCard(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"statements_deleted": deleted})
}

// decodeCardInput parses and validates the request body, writing the
// error response itself on failure.
func decodeCardInput(w http.ResponseWriter, r *http.Request) (model.CardInput, bool) {
	var input model.CardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return input, false
	}

	if errs := validation.ValidateCard(input); !errs.Valid() {
		writeFieldErrors(w, errs)
		return input, false
	}
	return input, true
}

// cardFromInput derives the stored billing-cycle fields from the
// submitted example dates. Validation has already guaranteed both dates
// parse and the due date follows the statement date.
func cardFromInput(input model.CardInput) *model.Card {
	statementDate, _ := time.Parse(model.DateFormat, input.StatementDate)
	dueDate, _ := time.Parse(model.DateFormat, input.DueDate)

	return &model.Card{
		Name:         strings.TrimSpace(input.Name),
		LastFour:     strings.TrimSpace(input.LastFour),
		StatementDay: statementDate.Day(),
		DaysUntilDue: int(dueDate.Sub(statementDate).Hours() / 24),
		CreditLimit:  input.CreditLimit,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
