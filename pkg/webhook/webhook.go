// Package webhook posts finished reports to HTTP endpoints so that
// downstream systems (dashboards, chat bots) can pick up a run's results
// without polling the output files.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ccollicutt/logsift/pkg/output"
)

// DefaultTimeout applies when SendOptions.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of an endpoint's response body is kept.
const maxBodyBytes = 1024 * 1024

// Client delivers reports to webhook endpoints. A single Client is safe
// for concurrent use.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// SendOptions configures a single delivery.
type SendOptions struct {
	URL     string
	Token   string        // bearer token, empty for unauthenticated endpoints
	Timeout time.Duration // per-request deadline, DefaultTimeout if zero
}

// Response records the outcome of one delivery attempt. A non-2xx status
// is reported through Error as well as StatusCode.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
	Error      error
}

// Success reports whether the endpoint accepted the delivery.
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Send posts the report as a JSON body to opts.URL. It never returns nil;
// delivery failures are carried in the Response rather than as an error
// return so callers can log them uniformly.
func (c *Client) Send(ctx context.Context, report *output.Report, opts SendOptions) *Response {
	start := time.Now()
	resp := &Response{}
	fail := func(err error) *Response {
		resp.Error = err
		resp.Duration = time.Since(start)
		return resp
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fail(fmt.Errorf("marshaling report: %w", err))
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(payload))
	if err != nil {
		return fail(fmt.Errorf("building request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "logsift-webhook")
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(fmt.Errorf("request failed: %w", err))
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return fail(fmt.Errorf("reading response: %w", err))
	}

	resp.StatusCode = httpResp.StatusCode
	resp.Body = string(body)
	resp.Duration = time.Since(start)

	if resp.StatusCode >= 400 {
		resp.Error = fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return resp
}
