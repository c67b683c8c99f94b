package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// RunRequest is the body sent to the automation endpoint.
type RunRequest struct {
	AssigneeID string `json:"assignee_id,omitempty"`
}

// RunResponse is the automation endpoint's summary of a generation run.
type RunResponse struct {
	RunID        string   `json:"run_id"`
	TasksCreated int      `json:"tasks_created"`
	OverdueFound int      `json:"overdue_found"`
	Errors       []string `json:"errors,omitempty"`
}

// Client triggers PPM generation on a remote instance over HTTP with a
// bearer credential. It exists for out-of-process schedulers (cron jobs,
// hosted automations) that cannot call the scheduler service directly.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates an automation client for the given base URL and token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// RunPPM POSTs a generation request. On transport failure or a non-2xx
// status it returns a zero-valued response together with the error, so
// callers can tell a failed run from a run that created nothing.
func (c *Client) RunPPM(ctx context.Context, assigneeID string) (RunResponse, error) {
	body, err := json.Marshal(RunRequest{AssigneeID: assigneeID})
	if err != nil {
		return RunResponse{}, fmt.Errorf("marshal run request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/automation/run-ppm", bytes.NewReader(body))
	if err != nil {
		return RunResponse{}, fmt.Errorf("build run request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Automation request failed")
		return RunResponse{}, fmt.Errorf("automation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return RunResponse{}, fmt.Errorf("automation endpoint returned status %d", resp.StatusCode)
	}

	var result RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return RunResponse{}, fmt.Errorf("decode automation response: %w", err)
	}
	return result, nil
}
