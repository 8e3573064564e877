package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/validation"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	current, err := s.settings.Load()
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, current)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var incoming model.Settings
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	incoming.DiscordWebhookURL = strings.TrimSpace(incoming.DiscordWebhookURL)
	if err := validation.ValidateWebhookURL(incoming.DiscordWebhookURL); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.settings.Save(incoming); err != nil {
		slog.Error("failed to save settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, incoming)
}
