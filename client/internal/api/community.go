package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/agrismart/agrismart-client/endpoints"
)

// GetCommunityReports lists field reports shared by other farmers.
func GetCommunityReports(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.CommunityReports, "get community reports", "Failed to fetch community reports")
}

// SubmitCommunityReport shares a field report.
func SubmitCommunityReport(ctx context.Context, rc *resty.Client, report any) (json.RawMessage, error) {
	return postJSON(ctx, rc, endpoints.CommunityReports, report, "submit community report", "Failed to submit community report")
}

// GetCommunityPosts lists discussion posts.
func GetCommunityPosts(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.CommunityPosts, "get community posts", "Failed to fetch community posts")
}

// CreateCommunityPost publishes a discussion post.
func CreateCommunityPost(ctx context.Context, rc *resty.Client, post any) (json.RawMessage, error) {
	return postJSON(ctx, rc, endpoints.CommunityPosts, post, "create community post", "Failed to create community post")
}
