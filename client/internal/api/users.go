package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/agrismart/agrismart-client/endpoints"
)

// GetProfile returns the signed-in user's profile.
func GetProfile(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.UserProfile, "get profile", "Failed to fetch user profile")
}

// UpdateProfile posts profile changes.
func UpdateProfile(ctx context.Context, rc *resty.Client, update any) (json.RawMessage, error) {
	return postJSON(ctx, rc, endpoints.UpdateProfile, update, "update profile", "Failed to update user profile")
}
