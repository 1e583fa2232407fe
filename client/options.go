package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrismart/agrismart-client/session"
)

// Option configures a Client during construction in New.
//
// Options only record settings; the HTTP client and its hooks are built
// after every option has been applied, so option order does not matter.
type Option func(*Client) error

// WithBaseURL sets the backend origin, e.g. "https://api.example.com".
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base URL %q", raw)
		}
		c.baseURL = raw
		return nil
	}
}

// WithHTTPTimeout sets the client-wide request timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithStore sets where the session token and authenticated flag live.
// The Client takes ownership and closes the store in Close.
func WithStore(s session.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("session store cannot be nil")
		}
		c.store = s
		return nil
	}
}

// WithUnauthorizedHandler registers fn to run once for every 401 response,
// after the session has been cleared. Applications use it to send the user
// back to their login view.
func WithUnauthorizedHandler(fn UnauthorizedHandler) Option {
	return func(c *Client) error {
		c.onUnauthorized = fn
		return nil
	}
}

// WithLoginView sets the view name reported in UnauthorizedEvent.
func WithLoginView(view string) Option {
	return func(c *Client) error {
		if view == "" {
			return fmt.Errorf("login view cannot be empty")
		}
		c.loginView = view
		return nil
	}
}

// WithTransport replaces the underlying http.RoundTripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		c.transport = rt
		return nil
	}
}

// WithLogger sets the logger used by the client's hooks.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it dumps headers,
// including the bearer token, and bodies to the log.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}
