package model

// Settings is the application settings singleton. It is read and
// replaced wholesale; there is no partial update.
type Settings struct {
	DiscordWebhookURL string `json:"DiscordWebhookURL" yaml:"discord_webhook_url"`
}

// NotificationsEnabled reports whether a Discord webhook is configured.
func (s Settings) NotificationsEnabled() bool {
	return s.DiscordWebhookURL != ""
}
