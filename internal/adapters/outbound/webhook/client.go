package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/fixhook/fixhook/internal/domain"
)

// maxResponseBytes bounds how much of a reply is read.
const maxResponseBytes = 16 << 20

// Client implements domain.FixClient by POSTing JSON to the configured endpoint.
type Client struct {
	userAgent string
	transport http.RoundTripper
}

var _ domain.FixClient = (*Client)(nil)

// New creates a Client that identifies itself as fixhook/<version>.
func New(version string) *Client {
	return &Client{
		userAgent: "fixhook/" + version,
		transport: http.DefaultTransport,
	}
}

type fixResponseBody struct {
	FixedCode   *string  `json:"fixedCode"`
	Explanation string   `json:"explanation"`
	Confidence  *float64 `json:"confidence"`
}

// Fix sends req once. There is no retry: every failure is mapped to a
// domain error kind and returned.
func (c *Client) Fix(ctx context.Context, cfg domain.Config, req domain.FixRequest) (*domain.FixResponse, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, domain.NewMissingEndpointError()
	}
	if req.Problems == nil {
		req.Problems = []string{}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal fix request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("invalid endpoint %q", cfg.Endpoint), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	client := &http.Client{Transport: c.transport, Timeout: cfg.Timeout()}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(cfg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewEndpointNotFoundError(cfg.Endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewUnknownError(fmt.Errorf("fix service returned status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyTransportError(cfg, err)
	}

	var parsed fixResponseBody
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, domain.NewInvalidResponseError(fmt.Sprintf("body is not JSON (%.80q)", string(data)), err)
	}
	if parsed.FixedCode == nil || *parsed.FixedCode == "" {
		return nil, domain.NewInvalidResponseError("missing fixedCode", nil)
	}

	return &domain.FixResponse{
		FixedCode:   *parsed.FixedCode,
		Explanation: parsed.Explanation,
		Confidence:  parsed.Confidence,
	}, nil
}

func classifyTransportError(cfg domain.Config, err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return domain.NewServiceUnavailableError(cfg.Endpoint, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewTimeoutError(cfg.TimeoutMs, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewTimeoutError(cfg.TimeoutMs, err)
	}
	return domain.NewUnknownError(err)
}
