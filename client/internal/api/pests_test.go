package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrismart/agrismart-client/client/internal/types"
)

func TestDetectPest_Multipart(t *testing.T) {
	t.Parallel()
	rc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/pest/detect" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "multipart/form-data") {
			t.Errorf("unexpected content type: %s", ct)
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer func() { _ = f.Close() }()
		b, _ := io.ReadAll(f)
		if hdr.Filename != "leaf.jpg" || string(b) != "jpeg-bytes" {
			t.Errorf("unexpected upload: %s %q", hdr.Filename, b)
		}
		_, _ = w.Write([]byte(`{"pest":"aphid","confidence":0.93}`))
	})

	got, err := DetectPest(context.Background(), rc, types.Upload{FileName: "leaf.jpg", Reader: strings.NewReader("jpeg-bytes")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pest":"aphid","confidence":0.93}`, string(got))
}

func TestDetectPest_Errors(t *testing.T) {
	t.Parallel()
	rc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"image too blurry"}`))
	})
	_, err := DetectPest(context.Background(), rc, types.Upload{FileName: "x.jpg", Reader: strings.NewReader("x")})
	require.Error(t, err)
	assert.Equal(t, "image too blurry", err.Error())

	_, err = DetectPest(context.Background(), rc, types.Upload{})
	require.Error(t, err)
	assert.Equal(t, "Pest detection failed", err.Error())

	_, err = DetectPest(context.Background(), failingRC(), types.Upload{Reader: strings.NewReader("x")})
	require.Error(t, err)
	assert.Equal(t, "Pest detection failed", err.Error())
}
