package otp

import (
	"context"
	"errors"
	"fmt"
)

// Provider-level failures, kept distinct so callers never have to parse
// provider-specific response shapes.
var (
	ErrProviderUnreachable = errors.New("otp provider unreachable")
	ErrInvalidPhone        = errors.New("otp provider rejected phone format")
	ErrRateLimited         = errors.New("otp provider rate limited")
	ErrUnknownHandle       = errors.New("otp provider does not know this handle")
)

// Provider dispatches one-time codes through an external messaging
// channel and checks submitted codes. Implementations are swappable
// behind this contract.
type Provider interface {
	// Send dispatches a code to the phone and returns the
	// provider-assigned verification handle.
	Send(ctx context.Context, phone string) (string, error)
	// Verify checks a submitted code against the provider. A false
	// result with nil error means the code is simply wrong.
	Verify(ctx context.Context, handle, code string) (bool, error)
	// SendText delivers a plain message on the same channel. Used for
	// best-effort notifications only.
	SendText(ctx context.Context, phone, message string) error
}

// Config selects and parameterizes a provider
type Config struct {
	Driver  string // "http" or "dev"
	BaseURL string
	APIKey  string
	Channel string // "sms" or "whatsapp"
}

// NewProvider builds a provider from config
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Driver {
	case "http":
		return newHTTPProvider(cfg), nil
	case "dev", "":
		return newDevProvider(), nil
	default:
		return nil, fmt.Errorf("unknown otp provider driver %q", cfg.Driver)
	}
}
