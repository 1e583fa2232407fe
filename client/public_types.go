package client

import "github.com/agrismart/agrismart-client/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	Credentials     = types.Credentials
	RegisterRequest = types.RegisterRequest
	ProfileUpdate   = types.ProfileUpdate
	CommunityReport = types.CommunityReport
	CommunityPost   = types.CommunityPost
	Upload          = types.Upload
)

// OpenUpload opens a local file for DetectPest. Close the returned file when done.
var OpenUpload = types.OpenUpload
