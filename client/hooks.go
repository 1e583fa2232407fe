package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/agrismart/agrismart-client/session"
)

// HeaderRequestID carries a per-request UUID.
const HeaderRequestID = "X-Request-ID"

// UnauthorizedEvent describes a 401 response. The session has already been
// cleared when a handler receives it.
type UnauthorizedEvent struct {
	Method    string
	Path      string
	RequestID string
	LoginView string // where the application should send the user
}

// UnauthorizedHandler reacts to a 401 response.
type UnauthorizedHandler func(ctx context.Context, ev UnauthorizedEvent)

// installHooks wires the middleware chain around every request, in order:
//
//	before: request ID, bearer token
//	after:  metrics, 401 handling
//	error:  transport failure logging
func (c *Client) installHooks(rc *resty.Client) {
	rc.OnBeforeRequest(c.setRequestID)
	rc.OnBeforeRequest(c.attachToken)
	rc.OnAfterResponse(c.observeResponse)
	rc.OnAfterResponse(c.handleUnauthorized)
	rc.OnError(c.logTransportError)
}

func (c *Client) setRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(HeaderRequestID) == "" {
		r.SetHeader(HeaderRequestID, uuid.NewString())
	}
	return nil
}

// attachToken reads the session token and sets the Authorization header.
// A store failure sends the request without credentials.
func (c *Client) attachToken(_ *resty.Client, r *resty.Request) error {
	tok, err := session.Token(r.Context(), c.store)
	if err != nil {
		c.log.Debug().Err(err).Str("url", r.URL).Msg("session read failed; sending request unauthenticated")
		return nil
	}
	if tok != "" {
		r.SetHeader("Authorization", "Bearer "+tok)
	}
	return nil
}

func (c *Client) observeResponse(_ *resty.Client, resp *resty.Response) error {
	method, path := resp.Request.Method, requestPath(resp.Request)
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(resp.StatusCode())).Inc()
	requestDuration.WithLabelValues(method, path).Observe(resp.Time().Seconds())

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status_code", resp.StatusCode()).
		Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
		Dur("elapsed", resp.Time()).
		Msg("HTTP request completed")
	return nil
}

// handleUnauthorized clears the session on 401 and signals the application.
// The response itself still propagates to the caller unchanged.
func (c *Client) handleUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}
	ctx := resp.Request.Context()
	if err := session.Clear(context.WithoutCancel(ctx), c.store); err != nil {
		c.log.Warn().Err(err).Msg("clear session after 401 failed")
	}
	unauthorizedTotal.Inc()

	ev := UnauthorizedEvent{
		Method:    resp.Request.Method,
		Path:      requestPath(resp.Request),
		RequestID: resp.Request.Header.Get(HeaderRequestID),
		LoginView: c.loginView,
	}
	c.log.Warn().
		Str("method", ev.Method).
		Str("path", ev.Path).
		Str("request_id", ev.RequestID).
		Str("login_view", ev.LoginView).
		Msg("authentication required; session cleared")

	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx, ev)
	}
	return nil
}

func (c *Client) logTransportError(r *resty.Request, err error) {
	path := requestPath(r)
	requestsTotal.WithLabelValues(r.Method, path, "error").Inc()
	c.log.Debug().Err(err).Str("method", r.Method).Str("path", path).Msg("HTTP request failed")
}

// requestPath returns the URL path of r without origin or query.
func requestPath(r *resty.Request) string {
	if r.RawRequest != nil && r.RawRequest.URL != nil {
		return r.RawRequest.URL.Path
	}
	if u, err := url.Parse(r.URL); err == nil {
		return u.Path
	}
	return r.URL
}
