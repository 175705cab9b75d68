// Package whatsapp implements the Notifier port against the shop's WhatsApp
// HTTP gateway.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrDispatchFailed marks every delivery failure the gateway can produce, so
// callers can classify without caring whether it was transport, HTTP status
// or a gateway-level rejection.
var ErrDispatchFailed = errors.New("message dispatch failed")

const defaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response gets pulled into the error
// message.
const maxErrorBody = 4 << 10

// sendRequest is the gateway's wire format.
type sendRequest struct {
	Broj   string `json:"broj"`
	Poruka string `json:"poruka"`
}

// sendResponse is what the gateway answers with. Success is a pointer so a
// body without the field does not read as a rejection.
type sendResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// Client sends messages through the WhatsApp gateway. An empty gateway URL
// disables dispatch entirely: every Send becomes a silent no-op, which lets
// the service run without a gateway in development.
type Client struct {
	gatewayURL string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a gateway client. A non-positive timeout falls back to
// ten seconds so a hung gateway can never wedge a status transition.
func NewClient(gatewayURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts one message to the gateway. An empty recipient, an empty
// message, or a recipient with no digits at all is a silent no-op success:
// there is nothing deliverable. Every failure comes back wrapping
// ErrDispatchFailed.
func (c *Client) Send(ctx context.Context, recipient, message string) error {
	if c.gatewayURL == "" {
		c.logger.Debug("gateway not configured, dropping message")
		return nil
	}
	if recipient == "" || message == "" {
		return nil
	}

	number := normalizeNumber(recipient)
	if number == "" {
		c.logger.Warn("recipient has no digits, dropping message",
			zap.String("recipient", recipient))
		return nil
	}

	body, err := json.Marshal(sendRequest{Broj: number, Poruka: message})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("gateway unreachable", zap.String("broj", number), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := errorDetail(resp)
		c.logger.Warn("gateway returned error status",
			zap.String("broj", number), zap.String("detail", detail))
		return fmt.Errorf("%w: gateway returned %s", ErrDispatchFailed, detail)
	}

	var parsed sendResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		// A 2xx with an unreadable body counts as delivered.
		c.logger.Debug("gateway response not parseable", zap.Error(err))
		return nil
	}
	if parsed.Success != nil && !*parsed.Success {
		c.logger.Warn("gateway rejected message",
			zap.String("broj", number), zap.String("gateway_error", parsed.Error))
		if parsed.Error != "" {
			return fmt.Errorf("%w: gateway rejected message: %s", ErrDispatchFailed, parsed.Error)
		}
		return fmt.Errorf("%w: gateway rejected message", ErrDispatchFailed)
	}

	c.logger.Debug("message dispatched", zap.String("broj", number))
	return nil
}

// errorDetail extracts what the gateway said about a failed request: the
// error field of its usual JSON body when present, the raw body text
// otherwise, and just the HTTP status when the body is empty.
func errorDetail(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return resp.Status
	}

	var parsed sendResponse
	if jsonErr := json.Unmarshal(raw, &parsed); jsonErr == nil && parsed.Error != "" {
		return fmt.Sprintf("%s: %s", resp.Status, parsed.Error)
	}

	if text := strings.TrimSpace(string(raw)); text != "" {
		return fmt.Sprintf("%s: %s", resp.Status, text)
	}
	return resp.Status
}

// normalizeNumber strips everything but digits, the only form the gateway
// accepts.
func normalizeNumber(recipient string) string {
	var b strings.Builder
	for _, r := range recipient {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
