package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodWebhook = "https://discord.com/api/webhooks/123/abc"

func TestSettingsSessionLoad(t *testing.T) {
	backend := newFakeAPI()
	backend.settings = model.Settings{DiscordWebhookURL: goodWebhook}
	session := NewSettingsSession(backend, newRecordingPresenter())

	session.Load(context.Background())

	assert.Equal(t, goodWebhook, session.Current().DiscordWebhookURL)
}

func TestSettingsSessionLoadFailureKeepsPriorValue(t *testing.T) {
	backend := newFakeAPI()
	presenter := newRecordingPresenter()
	session := NewSettingsSession(backend, presenter)

	backend.settings = model.Settings{DiscordWebhookURL: goodWebhook}
	session.Load(context.Background())

	backend.failNext(errors.New("connection refused"))
	session.Load(context.Background())

	assert.Equal(t, goodWebhook, session.Current().DiscordWebhookURL)
	last := presenter.lastNotification()
	require.NotNil(t, last)
	assert.Equal(t, "Failed to load settings", last.message)
}

func TestSettingsSessionSubmitSavesWholesale(t *testing.T) {
	backend := newFakeAPI()
	presenter := newRecordingPresenter()
	session := NewSettingsSession(backend, presenter)

	require.True(t, session.Submit(context.Background(), goodWebhook))
	assert.Equal(t, goodWebhook, backend.settings.DiscordWebhookURL)
	assert.Equal(t, goodWebhook, session.Current().DiscordWebhookURL)

	// Clearing the URL is a valid save that disables notifications.
	require.True(t, session.Submit(context.Background(), ""))
	assert.False(t, session.Current().NotificationsEnabled())
}

func TestSettingsSessionSubmitBlockedByValidation(t *testing.T) {
	backend := newFakeAPI()
	presenter := newRecordingPresenter()
	session := NewSettingsSession(backend, presenter)

	assert.False(t, session.Submit(context.Background(), "http://discord.com/api/webhooks/x"))
	assert.Contains(t, presenter.fieldErrors, "discord_webhook_url")
	assert.Empty(t, backend.settings.DiscordWebhookURL, "invalid value never reaches the API")
}

func TestSettingsSessionSaveFailureKeepsPriorValue(t *testing.T) {
	backend := newFakeAPI()
	presenter := newRecordingPresenter()
	session := NewSettingsSession(backend, presenter)

	require.True(t, session.Submit(context.Background(), goodWebhook))

	backend.failNext(serverError("disk full"))
	assert.False(t, session.Submit(context.Background(), "https://discordapp.com/api/webhooks/9/z"))

	assert.Equal(t, goodWebhook, session.Current().DiscordWebhookURL)
	last := presenter.lastNotification()
	require.NotNil(t, last)
	assert.Equal(t, "disk full", last.message)
}

func TestSettingsSessionAdvisoryCheck(t *testing.T) {
	presenter := newRecordingPresenter()
	session := NewSettingsSession(newFakeAPI(), presenter)

	assert.False(t, session.CheckWebhookURL("https://evil.com/api/webhooks/x"))
	assert.Contains(t, presenter.fieldErrors, "discord_webhook_url")

	assert.True(t, session.CheckWebhookURL(goodWebhook))
	assert.Empty(t, presenter.fieldErrors)

	assert.True(t, session.CheckWebhookURL(""))
}
