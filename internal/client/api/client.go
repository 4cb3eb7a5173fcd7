package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
	"github.com/MoulikGL/basiccrudapp-admin/internal/logging"
)

// Client talks to the backend HTTP API. It holds no session state of its
// own: every call receives the bearer token (possibly empty) explicitly.
type Client struct {
	http *resty.Client
	log  logging.Logger
}

// New validates the base URL once and builds the underlying HTTP client.
// An empty base URL yields common.ErrMissingBaseURL so misconfiguration
// surfaces at startup, not deep inside the first request.
func New(baseURL string, timeout time.Duration, log logging.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, common.ErrMissingBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute with a host, got %q", baseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme must be http or https, got %q", parsed.Scheme)
	}

	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	hc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &Client{http: hc, log: log}, nil
}

// do executes one call described by opts against path and maps the outcome
// to the client error taxonomy. The raw response body is returned for the
// caller to decode. There are no retries: every failure is terminal for the
// attempt.
func (c *Client) do(ctx context.Context, opts Options, path string) ([]byte, error) {
	req := c.http.R().SetContext(ctx).SetHeaders(opts.Headers)
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(opts.Method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if err := mapStatus(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// mapStatus converts a non-success HTTP status into a sentinel-wrapped error.
func mapStatus(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	if msg := serverMessage(resp.Body()); msg != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode(), msg)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode())
}

// serverMessage pulls the conventional {"message": "..."} field out of an
// error body, if there is one.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// decodeList accepts the two list response shapes the API is known to use:
// a bare array of records, or an object whose "data" field is the array.
// Anything else decodes to an empty list; a list load never fails on body
// shape alone.
func decodeList[T any](data []byte) []T {
	var direct []T
	if err := json.Unmarshal(data, &direct); err == nil && direct != nil {
		return direct
	}
	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data
	}
	return []T{}
}

// List fetches the full collection for a resource ("user", "product").
func List[T any](ctx context.Context, c *Client, resource, token string) ([]T, error) {
	opts, err := RequestOptions(http.MethodGet, token, nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, opts, "/"+resource)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", resource, err)
	}
	return decodeList[T](body), nil
}

// Create posts a new record to a resource collection.
func (c *Client) Create(ctx context.Context, resource, token string, record any) error {
	opts, err := RequestOptions(http.MethodPost, token, record)
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, opts, "/"+resource); err != nil {
		return fmt.Errorf("creating %s: %w", resource, err)
	}
	return nil
}

// Update replaces the record with the given id.
func (c *Client) Update(ctx context.Context, resource, token string, id int64, record any) error {
	opts, err := RequestOptions(http.MethodPut, token, record)
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, opts, "/"+resource+"/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("updating %s %d: %w", resource, id, err)
	}
	return nil
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, resource, token string, id int64) error {
	opts, err := RequestOptions(http.MethodDelete, token, nil)
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, opts, "/"+resource+"/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("deleting %s %d: %w", resource, id, err)
	}
	return nil
}
