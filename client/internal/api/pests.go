package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/agrismart/agrismart-client/client/internal/errors"
	"github.com/agrismart/agrismart-client/client/internal/types"
	"github.com/agrismart/agrismart-client/endpoints"
)

const pestImageField = "image"

// DetectPest uploads an image as multipart field "image".
func DetectPest(ctx context.Context, rc *resty.Client, image types.Upload) (json.RawMessage, error) {
	const op, fallback = "detect pest", "Pest detection failed"
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewTransportError(op, fallback, err)
	}
	if image.Reader == nil {
		return nil, apierrors.NewTransportError(op, fallback, fmt.Errorf("no image to upload"))
	}
	name := image.FileName
	if name == "" {
		name = pestImageField
	}
	req := rc.R().
		SetContext(ctx).
		SetFileReader(pestImageField, name, image.Reader)
	return send(req, http.MethodPost, endpoints.PestDetection, op, fallback)
}

// GetPestHistory lists previous detections.
func GetPestHistory(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.PestHistory, "get pest history", "Failed to fetch pest history")
}

// GetPestGallery lists reference pest images.
func GetPestGallery(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return get(ctx, rc, endpoints.PestGallery, "get pest gallery", "Failed to fetch pest gallery")
}
