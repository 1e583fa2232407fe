package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agrismart/agrismart-client/client/internal/api"
	"github.com/agrismart/agrismart-client/internal/config"
	"github.com/agrismart/agrismart-client/session"
)

// DefaultBaseURL is the production AgriSmart backend.
const DefaultBaseURL = "https://agrismart-3dtnfrcb7-sarhan-vohras-projects.vercel.app"

// DefaultTimeout bounds every request made by the SDK.
const DefaultTimeout = 30 * time.Second

// DefaultLoginView is reported in UnauthorizedEvent when no other view is configured.
const DefaultLoginView = "/login"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the AgriSmart API facade. One Client is meant to be shared by
// the whole process; it is safe for concurrent use.
type Client struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
	debug     bool

	rest  *resty.Client
	store session.Store
	log   zerolog.Logger

	loginView      string
	onUnauthorized UnauthorizedHandler

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client. Without options it talks to DefaultBaseURL and
// keeps the session in memory.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		log:       log.Logger,
		loginView: DefaultLoginView,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.store == nil {
		c.store = session.NewMemoryStore()
	}

	c.rest = c.newRestClient()
	return c, nil
}

// NewFromConfig builds a Client from the AGRISMART_* configuration and an
// already opened session store. opts are applied after the configured values.
func NewFromConfig(cfg *config.Config, store session.Store, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.Timeout),
		WithStore(store),
		WithLoginView(cfg.LoginView),
		WithDebugLogging(cfg.Debug),
	}
	return New(append(base, opts...)...)
}

// newRestClient builds the shared resty client and installs the middleware chain.
func (c *Client) newRestClient() *resty.Client {
	rc := resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0).
		SetLogger(restyLogger{log: c.log})

	if c.transport != nil {
		rc.SetTransport(c.transport)
	}
	if c.debug {
		base := rc.GetClient().Transport
		if base == nil {
			base = http.DefaultTransport
		}
		rc.SetTransport(&debugTransport{base: base, log: c.log})
	}

	c.installHooks(rc)
	return rc
}

// Close releases the session store. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			return fmt.Errorf("close session store: %w", err)
		}
	}
	return nil
}

// BaseURL returns the origin every request is sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// IsAuthenticated reports whether the session carries a token.
func (c *Client) IsAuthenticated(ctx context.Context) (bool, error) {
	tok, err := session.Token(ctx, c.store)
	if err != nil {
		return false, err
	}
	return tok != "", nil
}

// --------------------------------------------------------------------
// Authentication
// --------------------------------------------------------------------

// Login authenticates and persists the returned token and authenticated flag.
func (c *Client) Login(ctx context.Context, creds Credentials) (json.RawMessage, error) {
	return api.Login(ctx, c.rest, c.store, creds)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (json.RawMessage, error) {
	return api.Register(ctx, c.rest, req)
}

// Logout notifies the backend and clears the session. It never fails; a
// failed request is logged.
func (c *Client) Logout(ctx context.Context) {
	api.Logout(ctx, c.rest, c.store, c.log)
}

// RefreshToken exchanges the current token for a new one.
func (c *Client) RefreshToken(ctx context.Context) (json.RawMessage, error) {
	return api.RefreshToken(ctx, c.rest, c.store)
}

// --------------------------------------------------------------------
// User profile
// --------------------------------------------------------------------

// GetProfile returns the signed-in farmer's profile.
func (c *Client) GetProfile(ctx context.Context) (json.RawMessage, error) {
	return api.GetProfile(ctx, c.rest)
}

// UpdateProfile saves changed profile fields.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (json.RawMessage, error) {
	return api.UpdateProfile(ctx, c.rest, update)
}

// --------------------------------------------------------------------
// Pest detection
// --------------------------------------------------------------------

// DetectPest uploads a crop image for pest identification.
func (c *Client) DetectPest(ctx context.Context, image Upload) (json.RawMessage, error) {
	return api.DetectPest(ctx, c.rest, image)
}

// GetPestHistory lists previous pest detections.
func (c *Client) GetPestHistory(ctx context.Context) (json.RawMessage, error) {
	return api.GetPestHistory(ctx, c.rest)
}

// GetPestGallery returns the reference gallery of known pests.
func (c *Client) GetPestGallery(ctx context.Context) (json.RawMessage, error) {
	return api.GetPestGallery(ctx, c.rest)
}

// --------------------------------------------------------------------
// Soil health
// --------------------------------------------------------------------

// GetSoilHealth returns the latest soil health readings.
func (c *Client) GetSoilHealth(ctx context.Context) (json.RawMessage, error) {
	return api.GetSoilHealth(ctx, c.rest)
}

// GetSoilRecommendations returns soil treatment recommendations.
func (c *Client) GetSoilRecommendations(ctx context.Context) (json.RawMessage, error) {
	return api.GetSoilRecommendations(ctx, c.rest)
}

// GetSoilHistory returns past soil test results.
func (c *Client) GetSoilHistory(ctx context.Context) (json.RawMessage, error) {
	return api.GetSoilHistory(ctx, c.rest)
}

// --------------------------------------------------------------------
// Weather
// --------------------------------------------------------------------

// GetCurrentWeather returns current conditions for the farm location.
func (c *Client) GetCurrentWeather(ctx context.Context) (json.RawMessage, error) {
	return api.GetCurrentWeather(ctx, c.rest)
}

// GetWeatherForecast returns the upcoming forecast.
func (c *Client) GetWeatherForecast(ctx context.Context) (json.RawMessage, error) {
	return api.GetWeatherForecast(ctx, c.rest)
}

// GetWeatherAlerts returns active weather alerts.
func (c *Client) GetWeatherAlerts(ctx context.Context) (json.RawMessage, error) {
	return api.GetWeatherAlerts(ctx, c.rest)
}

// --------------------------------------------------------------------
// Crop management
// --------------------------------------------------------------------

// GetCropYield returns yield estimates.
func (c *Client) GetCropYield(ctx context.Context) (json.RawMessage, error) {
	return api.GetCropYield(ctx, c.rest)
}

// GetCropSchedule returns the crop calendar.
func (c *Client) GetCropSchedule(ctx context.Context) (json.RawMessage, error) {
	return api.GetCropSchedule(ctx, c.rest)
}

// GetCropRecommendations suggests crops for the farm.
func (c *Client) GetCropRecommendations(ctx context.Context) (json.RawMessage, error) {
	return api.GetCropRecommendations(ctx, c.rest)
}

// --------------------------------------------------------------------
// Market data
// --------------------------------------------------------------------

// GetMarketPrices returns current mandi prices.
func (c *Client) GetMarketPrices(ctx context.Context) (json.RawMessage, error) {
	return api.GetMarketPrices(ctx, c.rest)
}

// GetMarketTrends returns price trends.
func (c *Client) GetMarketTrends(ctx context.Context) (json.RawMessage, error) {
	return api.GetMarketTrends(ctx, c.rest)
}

// --------------------------------------------------------------------
// Reports & analytics
// --------------------------------------------------------------------

// GetReports lists generated farm reports.
func (c *Client) GetReports(ctx context.Context) (json.RawMessage, error) {
	return api.GetReports(ctx, c.rest)
}

// GetAnalytics returns farm analytics.
func (c *Client) GetAnalytics(ctx context.Context) (json.RawMessage, error) {
	return api.GetAnalytics(ctx, c.rest)
}

// --------------------------------------------------------------------
// Community
// --------------------------------------------------------------------

// GetCommunityReports lists field reports shared by other farmers.
func (c *Client) GetCommunityReports(ctx context.Context) (json.RawMessage, error) {
	return api.GetCommunityReports(ctx, c.rest)
}

// SubmitCommunityReport shares a field report with nearby farmers.
func (c *Client) SubmitCommunityReport(ctx context.Context, report CommunityReport) (json.RawMessage, error) {
	return api.SubmitCommunityReport(ctx, c.rest, report)
}

// GetCommunityPosts lists community discussion posts.
func (c *Client) GetCommunityPosts(ctx context.Context) (json.RawMessage, error) {
	return api.GetCommunityPosts(ctx, c.rest)
}

// CreateCommunityPost publishes a discussion post.
func (c *Client) CreateCommunityPost(ctx context.Context, post CommunityPost) (json.RawMessage, error) {
	return api.CreateCommunityPost(ctx, c.rest, post)
}
