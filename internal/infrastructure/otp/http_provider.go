package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// httpProvider talks to a REST messaging gateway. The gateway owns code
// generation and delivery; we only keep its verification handle.
type httpProvider struct {
	baseURL string
	apiKey  string
	channel string
	client  *http.Client
}

func newHTTPProvider(cfg Config) *httpProvider {
	channel := cfg.Channel
	if channel == "" {
		channel = "sms"
	}
	return &httpProvider{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Channel string `json:"channel"`
}

type sendResponse struct {
	Handle string `json:"handle"`
}

type verifyRequest struct {
	Handle string `json:"handle"`
	Code   string `json:"code"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

type textRequest struct {
	Phone   string `json:"phone"`
	Channel string `json:"channel"`
	Message string `json:"message"`
}

// Send dispatches a code and returns the gateway's verification handle
func (p *httpProvider) Send(ctx context.Context, phone string) (string, error) {
	var out sendResponse
	if err := p.post(ctx, "/v1/verifications", sendRequest{Phone: phone, Channel: p.channel}, &out); err != nil {
		return "", err
	}
	if out.Handle == "" {
		return "", fmt.Errorf("%w: empty handle in response", ErrProviderUnreachable)
	}
	return out.Handle, nil
}

// Verify checks a submitted code against the gateway
func (p *httpProvider) Verify(ctx context.Context, handle, code string) (bool, error) {
	var out verifyResponse
	if err := p.post(ctx, "/v1/verifications/check", verifyRequest{Handle: handle, Code: code}, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// SendText delivers a plain message on the configured channel
func (p *httpProvider) SendText(ctx context.Context, phone, message string) error {
	return p.post(ctx, "/v1/messages", textRequest{Phone: phone, Channel: p.channel, Message: message}, nil)
}

func (p *httpProvider) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return ErrInvalidPhone
	case resp.StatusCode == http.StatusNotFound:
		return ErrUnknownHandle
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: gateway returned %d", ErrProviderUnreachable, resp.StatusCode)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: unexpected status %d", ErrProviderUnreachable, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrProviderUnreachable, err)
	}
	return nil
}
