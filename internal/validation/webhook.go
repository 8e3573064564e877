package validation

import (
	"errors"
	"net/url"
	"strings"
)

// Webhook URL validation errors. Each violation gets its own message so
// the settings form can tell the user exactly what to fix; a URL that
// fails to parse at all gets the generic format error.
var (
	ErrWebhookFormat = errors.New("Invalid URL format")
	ErrWebhookScheme = errors.New("Discord webhook URL must use HTTPS")
	ErrWebhookHost   = errors.New("URL must be a Discord webhook (discord.com or discordapp.com)")
	ErrWebhookPath   = errors.New("URL must be a valid Discord webhook URL (must contain /api/webhooks/)")
)

// ValidateWebhookURL checks a Discord webhook URL. An empty or blank
// value is valid and disables notifications.
func ValidateWebhookURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return ErrWebhookFormat
	}

	if parsed.Scheme != "https" {
		return ErrWebhookScheme
	}

	if parsed.Hostname() != "discord.com" && parsed.Hostname() != "discordapp.com" {
		return ErrWebhookHost
	}

	if !strings.HasPrefix(parsed.Path, "/api/webhooks/") {
		return ErrWebhookPath
	}

	return nil
}
