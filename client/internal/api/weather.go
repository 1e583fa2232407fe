package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/agrismart/agrismart-client/endpoints"
)

func GetCurrentWeather(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.WeatherCurrent, "get current weather", "Failed to fetch weather data")
}

func GetWeatherForecast(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.WeatherForecast, "get weather forecast", "Failed to fetch weather forecast")
}

func GetWeatherAlerts(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.WeatherAlerts, "get weather alerts", "Failed to fetch weather alerts")
}
