package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
)

const listsPath = "/lists"

// Client is the HTTP wrapper for the lists REST resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new store client. A zero timeout means no timeout;
// a nil limiter means requests are not paced.
func NewClient(baseURL string, timeout time.Duration, limiter *rate.Limiter) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// ListLists fetches the whole collection via GET /lists.
func (c *Client) ListLists(ctx context.Context) ([]model.TodoList, error) {
	var lists []model.TodoList
	if err := c.do(ctx, http.MethodGet, c.baseURL+listsPath, nil, &lists, http.StatusOK); err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	if lists == nil {
		lists = []model.TodoList{}
	}
	return lists, nil
}

// GetList fetches a single list via GET /lists/{id}.
func (c *Client) GetList(ctx context.Context, id string) (model.TodoList, error) {
	var list model.TodoList
	if err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &list, http.StatusOK); err != nil {
		return model.TodoList{}, fmt.Errorf("get list %s: %w", id, err)
	}
	return list, nil
}

// CreateList creates a list via POST /lists.
func (c *Client) CreateList(ctx context.Context, list model.TodoList) (model.TodoList, error) {
	var created model.TodoList
	if err := c.do(ctx, http.MethodPost, c.baseURL+listsPath, list, &created, http.StatusOK, http.StatusCreated); err != nil {
		return model.TodoList{}, fmt.Errorf("create list: %w", err)
	}
	return created, nil
}

// ReplaceList overwrites a list via PUT /lists/{id}.
func (c *Client) ReplaceList(ctx context.Context, id string, list model.TodoList) (model.TodoList, error) {
	var updated model.TodoList
	if err := c.do(ctx, http.MethodPut, c.itemURL(id), list, &updated, http.StatusOK); err != nil {
		return model.TodoList{}, fmt.Errorf("replace list %s: %w", id, err)
	}
	return updated, nil
}

func (c *Client) itemURL(id string) string {
	return fmt.Sprintf("%s%s/%s", c.baseURL, listsPath, url.PathEscape(id))
}

// do sends one request and decodes the body into out. 404 maps to
// todolist.ErrNotFound; every other failure maps to todolist.ErrNetwork.
func (c *Client) do(ctx context.Context, method, target string, in, out any, okStatus ...int) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", todolist.ErrNetwork, err)
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", todolist.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return todolist.ErrNotFound
	}
	if !statusIn(resp.StatusCode, okStatus) {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: store error %d: %s", todolist.ErrNetwork, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", todolist.ErrNetwork, err)
	}
	return nil
}

func statusIn(code int, allowed []int) bool {
	for _, s := range allowed {
		if code == s {
			return true
		}
	}
	return false
}
