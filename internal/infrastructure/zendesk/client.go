package zendesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"briefing/internal/domain/reconciliation"
	sharedConfig "briefing/internal/shared/config"
	"briefing/internal/shared/logger"
)

const (
	requestTimeout = 10 * time.Second
	// Maximum response body size for ticket API responses (256KB)
	maxResponseSize = 256 << 10
)

type ticketEnvelope struct {
	Ticket struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	} `json:"ticket"`
}

type updateEnvelope struct {
	Ticket struct {
		Status string `json:"status"`
	} `json:"ticket"`
}

// Client talks to the Zendesk ticket API with API token auth.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg *sharedConfig.ZendeskConfig, log logger.Interface) *Client {
	return &Client{
		baseURL:  fmt.Sprintf("https://%s.zendesk.com/api/v2", cfg.Subdomain),
		email:    cfg.Email,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: log.Named("zendesk"),
	}
}

var _ reconciliation.ZendeskGateway = (*Client)(nil)

// GetTicketStatus fetches the ticket's current remote status.
func (c *Client) GetTicketStatus(ctx context.Context, ticketID string) (string, error) {
	endpoint := fmt.Sprintf("%s/tickets/%s.json", c.baseURL, url.PathEscape(ticketID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch ticket %s: %w", ticketID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ticket API returned status %d for ticket %s", resp.StatusCode, ticketID)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read ticket response: %w", err)
	}

	var envelope ticketEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("failed to parse ticket response: %w", err)
	}

	if envelope.Ticket.Status == "" {
		return "", fmt.Errorf("ticket %s has no status in response", ticketID)
	}

	return envelope.Ticket.Status, nil
}

// UpdateTicketStatus applies a status change to the remote ticket.
func (c *Client) UpdateTicketStatus(ctx context.Context, ticketID, status string) error {
	endpoint := fmt.Sprintf("%s/tickets/%s.json", c.baseURL, url.PathEscape(ticketID))

	var envelope updateEnvelope
	envelope.Ticket.Status = status
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode ticket update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", ticketID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ticket API returned status %d updating ticket %s", resp.StatusCode, ticketID)
	}

	c.logger.Infow("pushed ticket status", "ticket_id", ticketID, "status", status)
	return nil
}

func (c *Client) authorize(req *http.Request) {
	// Zendesk token auth uses "email/token" as the basic auth username.
	req.SetBasicAuth(c.email+"/token", c.apiToken)
}
