// Package endpoints is the fixed catalog of AgriSmart REST paths.
package endpoints

// Authentication
const (
	Login        = "/api/auth/login"
	Register     = "/api/auth/register"
	Logout       = "/api/auth/logout"
	RefreshToken = "/api/auth/refresh"
)

// User management
const (
	UserProfile   = "/api/user/profile"
	UpdateProfile = "/api/user/profile"
)

// Pest detection
const (
	PestDetection = "/api/pest/detect"
	PestHistory   = "/api/pest/history"
	PestGallery   = "/api/pest/gallery"
)

// Soil health
const (
	SoilHealth          = "/api/soil/health"
	SoilRecommendations = "/api/soil/recommendations"
	SoilHistory         = "/api/soil/history"
)

// Weather
const (
	WeatherCurrent  = "/api/weather/current"
	WeatherForecast = "/api/weather/forecast"
	WeatherAlerts   = "/api/weather/alerts"
)

// Crop management
const (
	CropYield           = "/api/crop/yield"
	CropSchedule        = "/api/crop/schedule"
	CropRecommendations = "/api/crop/recommendations"
)

// Market data
const (
	MarketPrices = "/api/market/prices"
	MarketTrends = "/api/market/trends"
)

// Reports & analytics
const (
	Reports   = "/api/reports"
	Analytics = "/api/analytics"
)

// Community
const (
	CommunityReports = "/api/community/reports"
	CommunityPosts   = "/api/community/posts"
)

var catalog = map[string]string{
	"LOGIN":                Login,
	"REGISTER":             Register,
	"LOGOUT":               Logout,
	"REFRESH_TOKEN":        RefreshToken,
	"USER_PROFILE":         UserProfile,
	"UPDATE_PROFILE":       UpdateProfile,
	"PEST_DETECTION":       PestDetection,
	"PEST_HISTORY":         PestHistory,
	"PEST_GALLERY":         PestGallery,
	"SOIL_HEALTH":          SoilHealth,
	"SOIL_RECOMMENDATIONS": SoilRecommendations,
	"SOIL_HISTORY":         SoilHistory,
	"WEATHER_CURRENT":      WeatherCurrent,
	"WEATHER_FORECAST":     WeatherForecast,
	"WEATHER_ALERTS":       WeatherAlerts,
	"CROP_YIELD":           CropYield,
	"CROP_SCHEDULE":        CropSchedule,
	"CROP_RECOMMENDATIONS": CropRecommendations,
	"MARKET_PRICES":        MarketPrices,
	"MARKET_TRENDS":        MarketTrends,
	"REPORTS":              Reports,
	"ANALYTICS":            Analytics,
	"COMMUNITY_REPORTS":    CommunityReports,
	"COMMUNITY_POSTS":      CommunityPosts,
}

// Catalog returns a copy of the symbolic name to path table.
func Catalog() map[string]string {
	out := make(map[string]string, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out
}

// Lookup returns the path registered under name.
func Lookup(name string) (string, bool) {
	p, ok := catalog[name]
	return p, ok
}
