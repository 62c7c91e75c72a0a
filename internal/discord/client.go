package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lojasmm/rowkit/internal/response"
)

const DefaultAPIBase = "https://discord.com/api/v10"

// APIError is returned when the API answers with a 4xx or 5xx status.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord API status %d: %s", e.Status, e.Body)
}

type Client struct {
	baseURL  string
	appID    string
	botToken string
	http     *http.Client
}

func NewClient(baseURL, appID, botToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	return &Client{
		baseURL:  baseURL,
		appID:    appID,
		botToken: botToken,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Respond sends the initial response to an interaction.
// Reference: POST /interactions/{interaction.id}/{interaction.token}/callback
func (c *Client) Respond(ctx context.Context, interactionID, token string, resp InteractionResponse) error {
	url := fmt.Sprintf("%s/interactions/%s/%s/callback", c.baseURL, interactionID, token)
	return c.post(ctx, url, resp)
}

// Followup sends an extra message after the initial response.
// Reference: POST /webhooks/{application.id}/{interaction.token}
func (c *Client) Followup(ctx context.Context, token string, p response.Payload) error {
	url := fmt.Sprintf("%s/webhooks/%s/%s", c.baseURL, c.appID, token)
	return c.post(ctx, url, p)
}

func (c *Client) post(ctx context.Context, url string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	// Interaction endpoints authenticate by token in the path; the bot token is optional.
	if c.botToken != "" {
		req.Header.Set("Authorization", "Bot "+c.botToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}
