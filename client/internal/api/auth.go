package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	apierrors "github.com/agrismart/agrismart-client/client/internal/errors"
	"github.com/agrismart/agrismart-client/client/internal/types"
	"github.com/agrismart/agrismart-client/endpoints"
	"github.com/agrismart/agrismart-client/session"
)

// Login authenticates and, when the response carries a token, persists it
// together with the authenticated flag before returning the body.
func Login(ctx context.Context, rc *resty.Client, store session.Store, creds any) (json.RawMessage, error) {
	body, err := postJSON(ctx, rc, endpoints.Login, creds, "login", "Login failed")
	if err != nil {
		return nil, err
	}
	if token := tokenFrom(body); token != "" {
		if err := session.SaveLogin(ctx, store, token); err != nil {
			return nil, &apierrors.OperationError{
				Op:         "login",
				Message:    "Login failed",
				StatusCode: http.StatusOK,
				Underlying: fmt.Errorf("save session: %w", err),
			}
		}
	}
	return body, nil
}

// Register creates a new account. It does not log in.
func Register(ctx context.Context, rc *resty.Client, req any) (json.RawMessage, error) {
	return postJSON(ctx, rc, endpoints.Register, req, "register", "Registration failed")
}

// Logout notifies the backend and clears the session. It never fails: a
// failed request or store error is logged and the session is cleared anyway.
func Logout(ctx context.Context, rc *resty.Client, store session.Store, log zerolog.Logger) {
	if _, err := postJSON(ctx, rc, endpoints.Logout, nil, "logout", "Logout failed"); err != nil {
		log.Warn().Err(err).Str("path", endpoints.Logout).Msg("logout request failed")
	}
	if err := session.Clear(context.WithoutCancel(ctx), store); err != nil {
		log.Warn().Err(err).Msg("clear session failed")
	}
}

// RefreshToken asks for a new token and stores it when one is returned.
func RefreshToken(ctx context.Context, rc *resty.Client, store session.Store) (json.RawMessage, error) {
	body, err := postJSON(ctx, rc, endpoints.RefreshToken, nil, "refresh token", "Failed to refresh token")
	if err != nil {
		return nil, err
	}
	if token := tokenFrom(body); token != "" {
		if err := store.Set(ctx, session.KeyToken, token); err != nil {
			return nil, &apierrors.OperationError{
				Op:         "refresh token",
				Message:    "Failed to refresh token",
				StatusCode: http.StatusOK,
				Underlying: fmt.Errorf("save token: %w", err),
			}
		}
	}
	return body, nil
}

// tokenFrom returns the top-level "token" of body in stored form, or "".
func tokenFrom(body json.RawMessage) string {
	var tr types.TokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return ""
	}
	return tr.Value()
}
