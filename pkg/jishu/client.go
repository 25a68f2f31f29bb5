package jishu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgErrors "jishu-admin/pkg/errors"
	"jishu-admin/pkg/paginate"
)

// Client is the HTTP wrapper for the Jishu backend REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Jishu API client.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// do executes one request and decodes the JSON body into out (unless nil).
func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s body: %w", method, url, err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, url, err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", pkgErrors.NewNetworkError("failed to call jishu API"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return classifyStatus(resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", pkgErrors.NewNetworkError("failed to decode jishu API response"), err)
	}
	return nil
}

// classifyStatus maps upstream status codes onto the error taxonomy.
func classifyStatus(code int, body string) error {
	msg := fmt.Sprintf("jishu API error %d: %s", code, body)
	switch {
	case code == http.StatusNotFound:
		return pkgErrors.NewNotFoundError(msg)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return pkgErrors.NewValidationError(msg)
	default:
		return pkgErrors.NewNetworkError(msg)
	}
}

// List fetches one page of a collection:
// GET {base}/{path}?page&per_page&search&<filters>.
func List[T any](ctx context.Context, c *Client, path string, q paginate.Query) (paginate.Page[T], error) {
	var page paginate.Page[T]
	url := fmt.Sprintf("%s/%s?%s", c.baseURL, path, q.Normalize().Values().Encode())
	if err := c.do(ctx, http.MethodGet, url, nil, &page); err != nil {
		return paginate.Page[T]{}, err
	}
	return page, nil
}

// Get fetches a single entity by id.
func Get[T any](ctx context.Context, c *Client, path, id string) (T, error) {
	var out T
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, path, id)
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Create posts a new entity and returns the stored version.
func Create[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var out T
	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	if err := c.do(ctx, http.MethodPost, url, payload, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update replaces an entity by id and returns the stored version.
func Update[T any](ctx context.Context, c *Client, path, id string, payload any) (T, error) {
	var out T
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, path, id)
	if err := c.do(ctx, http.MethodPut, url, payload, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Delete removes an entity by id.
func Delete(ctx context.Context, c *Client, path, id string) error {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, path, id)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}
