package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"daily-planner/internal/models"
)

// ErrNotFound はストアが404を返した場合のエラーです。
var ErrNotFound = errors.New("task not found")

// StatusError はストアが想定外のステータスを返した場合のエラーです。
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("task store returned %d: %s", e.Code, e.Message)
}

// Client はタスクストアのREST APIクライアントです。
type Client struct {
	baseURL string
	client  *http.Client
}

// Client が TaskAPI を満たすことを確認します。
var _ TaskAPI = (*Client)(nil)

// NewClient は新しいClientを作成します。
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// List は GET /plan を呼び出します。date はクエリとして送りますが、サーバーは絞り込みません。
func (c *Client) List(ctx context.Context, date string) ([]models.Task, error) {
	endpoint := c.baseURL + "/plan"
	if date != "" {
		endpoint += "?" + url.Values{"date": {date}}.Encode()
	}

	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, endpoint, nil, http.StatusOK, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Create は POST /plan を呼び出します。
func (c *Client) Create(ctx context.Context, req models.CreateTaskRequest) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"/plan", req, http.StatusCreated, nil)
}

// Delete は DELETE /plan/:id を呼び出します。
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, http.StatusNoContent, nil)
}

// SetCompleted は PATCH /plan/:id を呼び出します。
// IDが存在しない場合、ストアは null を返すため (nil, nil) になります。
func (c *Client) SetCompleted(ctx context.Context, id string, completed bool) (*models.Task, error) {
	var task *models.Task
	body := map[string]bool{"completed": completed}
	if err := c.do(ctx, http.MethodPatch, c.taskURL(id), body, http.StatusOK, &task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) taskURL(id string) string {
	return c.baseURL + "/plan/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, endpoint string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != want {
		return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
