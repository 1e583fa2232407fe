package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/agrismart/agrismart-client/endpoints"
)

func GetCropYield(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.CropYield, "get crop yield", "Failed to fetch crop yield data")
}

func GetCropSchedule(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.CropSchedule, "get crop schedule", "Failed to fetch crop schedule")
}

func GetCropRecommendations(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.CropRecommendations, "get crop recommendations", "Failed to fetch crop recommendations")
}
