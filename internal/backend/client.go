// Package backend is the read/write HTTP contract with the external
// task-execution backend. The console only ever pulls documents from it and
// posts resume inputs; the backend owns all canonical state.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/logger"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// Client talks to the delivery backend over HTTP+JSON.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a backend client. A zero timeout defaults to 5 seconds.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetStatus fetches the current status document for a task.
func (c *Client) GetStatus(ctx context.Context, taskID string) (*types.TaskStatusDocument, error) {
	var doc types.TaskStatusDocument
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/tasks/%s/status", taskID), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetEvents fetches the flat chronological event log for a task.
func (c *Client) GetEvents(ctx context.Context, taskID string) (*types.EventLogDocument, error) {
	var doc types.EventLogDocument
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/tasks/%s/events", taskID), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetTrace fetches the canonical trace document for a task.
func (c *Client) GetTrace(ctx context.Context, taskID string) (*types.TraceDocument, error) {
	var doc types.TraceDocument
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/tasks/%s/trace", taskID), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetToolExecutions fetches the flat tool invocation list for a task.
func (c *Client) GetToolExecutions(ctx context.Context, taskID string) ([]types.ToolExecution, error) {
	var doc struct {
		ToolExecutions []types.ToolExecution `json:"tool_executions"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/tasks/%s/tools", taskID), &doc); err != nil {
		return nil, err
	}
	return doc.ToolExecutions, nil
}

// ResumeTask posts user-supplied inputs that resume a paused task.
func (c *Client) ResumeTask(ctx context.Context, req types.ResumeTaskRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode resume payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/v1/tasks/%s/resume", c.baseURL, req.TaskID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build resume request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("resume request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resume rejected (%d): %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.authorize(req)

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("backend returned %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Logger.Warn().
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("failed to decode backend document")
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
