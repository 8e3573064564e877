package workflow

import (
	"context"
	"strings"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/validation"
)

// SettingsAPI is the slice of the API client the settings session uses.
type SettingsAPI interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	PutSettings(ctx context.Context, settings model.Settings) (*model.Settings, error)
}

// SettingsSession drives the single-field settings form bound to the
// settings singleton.
type SettingsSession struct {
	api       SettingsAPI
	presenter Presenter
	current   model.Settings
}

// NewSettingsSession creates a session with an empty singleton.
func NewSettingsSession(api SettingsAPI, presenter Presenter) *SettingsSession {
	return &SettingsSession{
		api:       api,
		presenter: presenter,
	}
}

// Current returns the in-memory settings value.
func (s *SettingsSession) Current() model.Settings {
	return s.current
}

// Load fetches the singleton. An absent value loads as the zero
// settings; a fetch failure keeps the prior value and notifies.
func (s *SettingsSession) Load(ctx context.Context) {
	settings, err := s.api.GetSettings(ctx)
	if err != nil {
		s.presenter.ShowNotification("Failed to load settings", SeverityError)
		return
	}
	if settings != nil {
		s.current = *settings
	}
	s.presenter.ClearFieldErrors()
}

// CheckWebhookURL is the advisory on-blur validation: it reports a
// field error without blocking anything.
func (s *SettingsSession) CheckWebhookURL(url string) bool {
	if err := validation.ValidateWebhookURL(url); err != nil {
		s.presenter.ShowFieldError("discord_webhook_url", err.Error())
		return false
	}
	s.presenter.ClearFieldErrors()
	return true
}

// Submit validates and saves the webhook URL wholesale. Validation
// failure blocks the save; a save failure leaves the prior in-memory
// value in place and surfaces a notification. Returns true on success.
func (s *SettingsSession) Submit(ctx context.Context, url string) bool {
	url = strings.TrimSpace(url)

	s.presenter.ClearFieldErrors()
	if err := validation.ValidateWebhookURL(url); err != nil {
		s.presenter.ShowFieldError("discord_webhook_url", err.Error())
		return false
	}

	saved, err := s.api.PutSettings(ctx, model.Settings{DiscordWebhookURL: url})
	if err != nil {
		s.presenter.ShowNotification(userMessage(err, "Failed to save settings"), SeverityError)
		return false
	}

	s.current = *saved
	s.presenter.ShowNotification("Settings saved successfully!", SeveritySuccess)
	return true
}
