package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/agrismart/agrismart-client/endpoints"
)

func GetReports(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.Reports, "get reports", "Failed to fetch reports")
}

func GetAnalytics(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.Analytics, "get analytics", "Failed to fetch analytics")
}
