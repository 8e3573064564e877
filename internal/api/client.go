// Package api wraps the credit card tracker's HTTP surface in a typed
// client. Every operation either returns parsed data or a classified
// error (NetworkError, HTTPError, DecodeError); the client keeps no
// state beyond its transport.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cardkeeper/cardkeeper/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client talks to a running cardkeeper server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCards fetches all cards.
func (c *Client) ListCards(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := c.do(ctx, http.MethodGet, "/api/v1/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// CreateCard creates a card from form input and returns the stored card
// with its server-assigned ID and derived fields.
func (c *Client) CreateCard(ctx context.Context, input model.CardInput) (*model.Card, error) {
	var card model.Card
	if err := c.do(ctx, http.MethodPost, "/api/v1/cards", input, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard replaces a card's editable fields.
func (c *Client) UpdateCard(ctx context.Context, id int, input model.CardInput) (*model.Card, error) {
	var card model.Card
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/cards/%d", id), input, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard deletes a card. Associated statements cascade server-side.
func (c *Client) DeleteCard(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/cards/%d", id), nil, nil)
}

// ListStatements fetches all statements.
func (c *Client) ListStatements(ctx context.Context) ([]model.Statement, error) {
	var statements []model.Statement
	if err := c.do(ctx, http.MethodGet, "/api/v1/statements", nil, &statements); err != nil {
		return nil, err
	}
	return statements, nil
}

// CreateStatement records a new statement for a card. The server
// assigns status "pending".
func (c *Client) CreateStatement(ctx context.Context, input model.StatementInput) (*model.Statement, error) {
	if input.Status == "" {
		input.Status = model.StatusPending
	}
	var stmt model.Statement
	if err := c.do(ctx, http.MethodPost, "/api/v1/statements", input, &stmt); err != nil {
		return nil, err
	}
	return &stmt, nil
}

// SchedulePayment commits a payment date for a statement. Scheduling
// happens at most once per statement; there is no unscheduling call.
func (c *Client) SchedulePayment(ctx context.Context, statementID int, scheduledDate string) (*model.Statement, error) {
	body := map[string]string{"scheduled_payment_date": scheduledDate}
	var stmt model.Statement
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/statements/%d/schedule", statementID), body, &stmt); err != nil {
		return nil, err
	}
	return &stmt, nil
}

// GetSettings fetches the settings singleton. A missing settings file
// on the server side comes back as the zero value, not an error.
func (c *Client) GetSettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// PutSettings replaces the settings singleton wholesale.
func (c *Client) PutSettings(ctx context.Context, settings model.Settings) (*model.Settings, error) {
	var saved model.Settings
	if err := c.do(ctx, http.MethodPut, "/api/settings", settings, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// do performs a single request. A nil out skips body decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// newHTTPError builds an HTTPError from a non-2xx response, pulling the
// user-facing message from a JSON {"error": ...} body when present.
func newHTTPError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	var structured struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil && structured.Error != "" {
		message = structured.Error
	}

	return &HTTPError{
		Status:  resp.StatusCode,
		Body:    string(raw),
		Message: message,
	}
}

func asHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
