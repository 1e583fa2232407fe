package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/agrismart/agrismart-client/endpoints"
)

func GetSoilHealth(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.SoilHealth, "get soil health", "Failed to fetch soil health data")
}

func GetSoilRecommendations(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.SoilRecommendations, "get soil recommendations", "Failed to fetch soil recommendations")
}

func GetSoilHistory(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.SoilHistory, "get soil history", "Failed to fetch soil history")
}
