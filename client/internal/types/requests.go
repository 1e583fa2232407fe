package types

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ------------------------------
// Request Types
// ------------------------------

// Credentials holds login parameters
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for a new farmer account
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    string  `json:"phone,omitempty"`
	Location string  `json:"location,omitempty"`
	FarmSize float64 `json:"farmSize,omitempty"`
}

// ProfileUpdate holds the editable profile fields
type ProfileUpdate struct {
	Name     string   `json:"name,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	FarmSize float64  `json:"farmSize,omitempty"`
	Crops    []string `json:"crops,omitempty"`
}

// CommunityReport is a field observation shared with nearby farmers
type CommunityReport struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

// CommunityPost is a discussion post
type CommunityPost struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// Upload is a file sent as a multipart form field
type Upload struct {
	FileName string
	Reader   io.Reader
}

// OpenUpload opens path for upload. The caller closes the returned file.
func OpenUpload(path string) (Upload, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return Upload{}, nil, fmt.Errorf("open upload: %w", err)
	}
	return Upload{FileName: filepath.Base(path), Reader: f}, f, nil
}
