// Package notify posts statement and payment reminders to a Discord
// webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/common"
	"github.com/cardkeeper/cardkeeper/internal/dateutil"
	"github.com/cardkeeper/cardkeeper/internal/model"
)

// Discord sends plain-content messages to a webhook URL.
type Discord struct {
	httpClient *http.Client
	webhookURL string
}

// DiscordOption configures a Discord notifier.
type DiscordOption func(*Discord)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) DiscordOption {
	return func(d *Discord) {
		d.httpClient = client
	}
}

// NewDiscord creates a notifier for the given webhook URL. An empty URL
// yields a disabled notifier whose sends fail with ErrWebhookDisabled.
func NewDiscord(webhookURL string, opts ...DiscordOption) *Discord {
	d := &Discord{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		webhookURL: webhookURL,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Enabled reports whether a webhook URL is configured.
func (d *Discord) Enabled() bool {
	return d.webhookURL != ""
}

// SendStatementReminder announces a newly recorded statement.
func (d *Discord) SendStatementReminder(ctx context.Context, card *model.Card, stmt *model.Statement) error {
	due, _ := time.Parse(model.DateFormat, stmt.DueDate)
	content := fmt.Sprintf("📋 New statement for %s (%s): %s due %s",
		card.Name,
		dateutil.FormatLastFour(card.LastFour),
		dateutil.FormatCurrency(stmt.Amount),
		dateutil.FormatShortDate(due))
	return d.send(ctx, content)
}

// SendPaymentReminder nudges about a pending statement whose recommended
// payment window has arrived.
func (d *Discord) SendPaymentReminder(ctx context.Context, card *model.Card, stmt *model.Statement) error {
	due, _ := time.Parse(model.DateFormat, stmt.DueDate)
	content := fmt.Sprintf("💳 Payment reminder for %s (%s): %s due %s — schedule it now",
		card.Name,
		dateutil.FormatLastFour(card.LastFour),
		dateutil.FormatCurrency(stmt.Amount),
		dateutil.FormatShortDate(due))
	return d.send(ctx, content)
}

func (d *Discord) send(ctx context.Context, content string) error {
	if !d.Enabled() {
		return common.ErrWebhookDisabled
	}

	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to webhook: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
