package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/agrismart/agrismart-client/client/internal/errors"
)

// Every operation issues exactly one request through the shared resty
// client. Authorization and 401 handling live in the client's hooks, not here.

// get performs a GET against path and returns the raw body.
func get(ctx context.Context, rc *resty.Client, path, op, fallback string) (json.RawMessage, error) {
	return execute(ctx, rc, http.MethodGet, path, nil, op, fallback)
}

// postJSON performs a POST with body encoded as JSON (nil sends no body).
func postJSON(ctx context.Context, rc *resty.Client, path string, body any, op, fallback string) (json.RawMessage, error) {
	return execute(ctx, rc, http.MethodPost, path, body, op, fallback)
}

func execute(ctx context.Context, rc *resty.Client, method, path string, body any, op, fallback string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewTransportError(op, fallback, err)
	}
	req := rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return send(req, method, path, op, fallback)
}

// send executes req and normalizes the outcome: 2xx bodies pass through
// unchanged, anything else becomes an *OperationError.
func send(req *resty.Request, method, path, op, fallback string) (json.RawMessage, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, apierrors.NewTransportError(op, fallback, err)
	}
	if !resp.IsSuccess() {
		return nil, apierrors.FromResponse(op, resp.StatusCode(), resp.Body(), fallback)
	}
	return json.RawMessage(resp.Body()), nil
}
