package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/agrismart/agrismart-client/endpoints"
)

func GetMarketPrices(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.MarketPrices, "get market prices", "Failed to fetch market prices")
}

func GetMarketTrends(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.MarketTrends, "get market trends", "Failed to fetch market trends")
}
