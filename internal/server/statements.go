package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/validation"
)

func (s *Server) handleListStatements(w http.ResponseWriter, r *http.Request) {
	statements, err := s.store.ListStatements(r.Context())
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statements)
}

func (s *Server) handleCreateStatement(w http.ResponseWriter, r *http.Request) {
	var input model.StatementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateStatement(input); !errs.Valid() {
		writeFieldErrors(w, errs)
		return
	}

	// The referenced card must exist; the FK would reject it anyway but
	// a 404 reads better than a constraint error.
	if _, err := s.store.GetCard(r.Context(), input.CardID); err != nil {
		writeStorageError(w, err)
		return
	}

	stmt := &model.Statement{
		CardID:        input.CardID,
		StatementDate: input.StatementDate,
		DueDate:       input.DueDate,
		Amount:        input.Amount,
		Status:        input.Status,
	}
	if err := s.store.CreateStatement(r.Context(), stmt); err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stmt)
}

func (s *Server) handleSchedulePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		ScheduledPaymentDate string `json:"scheduled_payment_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := time.Parse(model.DateFormat, body.ScheduledPaymentDate); err != nil {
		writeError(w, http.StatusBadRequest, "Scheduled payment date must be a valid date (YYYY-MM-DD)")
		return
	}

	stmt, err := s.store.SchedulePayment(r.Context(), id, body.ScheduledPaymentDate)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stmt)
}
