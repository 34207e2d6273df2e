package ticketing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Client is the helpdesk API client. The session cookie set by Login lives
// in the client's cookie jar, so one client represents one user.
type Client struct {
	baseURL      string
	estimatorURL string
	httpClient   *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A cookie jar is installed if the
// client has none.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithEstimatorURL sets the base URL of the estimation service.
func WithEstimatorURL(url string) Option {
	return func(client *Client) {
		client.estimatorURL = url
	}
}

// NewClient creates a new helpdesk API client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err == nil {
			c.httpClient.Jar = jar
		}
	}
	return c
}

// Login authenticates and stores the session cookie in the jar.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}

	var session Session
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/api/sessions", "", body, &session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &session, nil
}

// Logout ends the session. Safe to call without one.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodDelete, c.baseURL+"/api/sessions/current", "", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser returns the identity behind the session cookie.
func (c *Client) CurrentUser(ctx context.Context) (*Session, error) {
	var session Session
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/api/sessions/current", "", nil, &session); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &session, nil
}

// AuthToken requests a fresh access token for the estimation service.
func (c *Client) AuthToken(ctx context.Context) (*AccessToken, error) {
	var token AccessToken
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/api/auth-token", "", nil, &token); err != nil {
		return nil, fmt.Errorf("auth token: %w", err)
	}
	return &token, nil
}

// ListTickets retrieves all tickets, newest first. No session required.
func (c *Client) ListTickets(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/api/tickets", "", nil, &tickets); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// GetTicket retrieves a single ticket.
func (c *Client) GetTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	var ticket Ticket
	url := fmt.Sprintf("%s/api/tickets/%d", c.baseURL, ticketID)
	if err := c.doRequest(ctx, http.MethodGet, url, "", nil, &ticket); err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &ticket, nil
}

// CreateTicket opens a new ticket owned by the session user.
func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (*CreatedTicket, error) {
	var ticket CreatedTicket
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/api/tickets", "", req, &ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &ticket, nil
}

// ListBlocks retrieves the follow-up thread of a ticket, oldest first.
func (c *Client) ListBlocks(ctx context.Context, ticketID uint) ([]Block, error) {
	var blocks []Block
	url := fmt.Sprintf("%s/api/tickets/%d/blocks", c.baseURL, ticketID)
	if err := c.doRequest(ctx, http.MethodGet, url, "", nil, &blocks); err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	return blocks, nil
}

// AddBlock appends a follow-up to an open ticket.
func (c *Client) AddBlock(ctx context.Context, ticketID uint, text string) (*CreatedBlock, error) {
	body := map[string]string{"text": text}

	var block CreatedBlock
	url := fmt.Sprintf("%s/api/tickets/%d/blocks", c.baseURL, ticketID)
	if err := c.doRequest(ctx, http.MethodPost, url, "", body, &block); err != nil {
		return nil, fmt.Errorf("add block: %w", err)
	}
	return &block, nil
}

// ToggleStatus flips a ticket between open and close.
func (c *Client) ToggleStatus(ctx context.Context, ticketID uint) error {
	url := fmt.Sprintf("%s/api/tickets/%d/status", c.baseURL, ticketID)
	if err := c.doRequest(ctx, http.MethodPatch, url, "", nil, nil); err != nil {
		return fmt.Errorf("toggle status: %w", err)
	}
	return nil
}

// ChangeCategory re-files a ticket. Admin sessions only.
func (c *Client) ChangeCategory(ctx context.Context, ticketID uint, category string) error {
	body := map[string]string{"category": category}

	url := fmt.Sprintf("%s/api/tickets/%d/category", c.baseURL, ticketID)
	if err := c.doRequest(ctx, http.MethodPatch, url, "", body, nil); err != nil {
		return fmt.Errorf("change category: %w", err)
	}
	return nil
}

// Estimate requests an effort estimate from the estimation service. The
// token comes from AuthToken or a running TokenRefresher.
func (c *Client) Estimate(ctx context.Context, token string, req EstimateRequest) (*Estimate, error) {
	var estimate Estimate
	if err := c.doRequest(ctx, http.MethodPost, c.estimatorURL+"/api/estimation", token, req, &estimate); err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}
	return &estimate, nil
}

// EstimateBatch estimates several tickets in one call. Admin tokens only.
func (c *Client) EstimateBatch(ctx context.Context, token string, reqs []EstimateRequest) ([]Estimate, error) {
	body := map[string]any{"tickets": reqs}

	var estimates []Estimate
	if err := c.doRequest(ctx, http.MethodPost, c.estimatorURL+"/api/estimations", token, body, &estimates); err != nil {
		return nil, fmt.Errorf("estimate batch: %w", err)
	}
	return estimates, nil
}

// apiResponse is the server's response envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
	Message string          `json:"message"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// doRequest performs an HTTP request and decodes the enveloped response.
func (c *Client) doRequest(ctx context.Context, method, url, token string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Success {
		if envelope.Error != nil {
			return &APIError{
				StatusCode: resp.StatusCode,
				Type:       envelope.Error.Type,
				Message:    envelope.Error.Message,
			}
		}
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d type=%s message=%s", e.StatusCode, e.Type, e.Message)
}
