package assetrelay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nextgeneev/nextgen-ev/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.CloudinaryConfig {
	return config.CloudinaryConfig{
		CloudName:  "demo",
		ApiKey:     "key123",
		ApiSecret:  "secret456",
		BaseFolder: "nextgen-ev",
	}
}

func TestNewClientDefaultEndpoint(t *testing.T) {
	client := NewClient(testConfig(), "")
	assert.Equal(t, "https://api.cloudinary.com/v1_1/demo", client.endpoint)
}

func TestUploadImage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/image/upload", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.True(t, strings.HasPrefix(r.PostFormValue("file"), "data:image/png;base64,"))
		assert.Equal(t, "key123", r.PostFormValue("api_key"))
		assert.Equal(t, "nextgen-ev/2wheeler", r.PostFormValue("folder"))
		assert.Equal(t, "c_limit,h_1080,w_1920/q_auto:good/f_auto", r.PostFormValue("transformation"))
		assert.NotEmpty(t, r.PostFormValue("signature"))
		assert.NotEmpty(t, r.PostFormValue("timestamp"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"secure_url":    "https://res.cloudinary.com/demo/image/upload/v1/nextgen-ev/2wheeler/abc.png",
			"public_id":     "nextgen-ev/2wheeler/abc",
			"resource_type": "image",
			"format":        "png",
			"width":         1920,
			"height":        1080,
			"bytes":         4096,
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(), server.URL)
	result, err := client.Upload(context.Background(), UploadInput{
		FileName:    "abc.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}, "nextgen-ev/2wheeler", ResourceImage)

	require.NoError(t, err)
	assert.Equal(t, "nextgen-ev/2wheeler/abc", result.PublicId)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/nextgen-ev/2wheeler/abc.png", result.Url)
	assert.Equal(t, "image", result.ResourceType)
	assert.Equal(t, 1920, result.Width)
	assert.Equal(t, int64(4096), result.Bytes)
}

func TestUploadVideo_EagerDerivative(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/video/upload", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "sp_hd/m3u8", r.PostFormValue("eager"))
		assert.Equal(t, "true", r.PostFormValue("eager_async"))
		assert.Empty(t, r.PostFormValue("transformation"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"secure_url":    "https://res.cloudinary.com/demo/video/upload/v1/nextgen-ev/hero/v.mp4",
			"public_id":     "nextgen-ev/hero/v",
			"resource_type": "video",
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(), server.URL)
	result, err := client.Upload(context.Background(), UploadInput{
		FileName:    "v.mp4",
		ContentType: "video/mp4",
		Data:        []byte("mp4-bytes"),
	}, "nextgen-ev/hero", ResourceVideo)

	require.NoError(t, err)
	assert.Equal(t, "nextgen-ev/hero/v", result.PublicId)
	assert.Equal(t, "video", result.ResourceType)
}

func TestUpload_RejectsEmptyPayload(t *testing.T) {
	client := NewClient(testConfig(), "http://127.0.0.1:1")
	_, err := client.Upload(context.Background(), UploadInput{FileName: "x.png"}, "", ResourceImage)
	assert.Error(t, err)
}

func TestUpload_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "Invalid Signature"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(), server.URL)
	_, err := client.Upload(context.Background(), UploadInput{
		FileName:    "abc.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}, "", ResourceImage)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Signature")
}

func TestDestroy_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/image/destroy", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "nextgen-ev/2wheeler/abc", r.PostFormValue("public_id"))
		assert.Equal(t, "true", r.PostFormValue("invalidate"))
		assert.NotEmpty(t, r.PostFormValue("signature"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"result": "ok"})
	}))
	defer server.Close()

	client := NewClient(testConfig(), server.URL)
	result, err := client.Destroy(context.Background(), "nextgen-ev/2wheeler/abc", ResourceImage)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "ok", result.Result)
}

func TestDestroy_NotFoundStillSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"result": "not found"})
	}))
	defer server.Close()

	client := NewClient(testConfig(), server.URL)
	result, err := client.Destroy(context.Background(), "ghost", ResourceImage)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "not found", result.Result)
}

func TestDestroy_RejectsEmptyPublicID(t *testing.T) {
	client := NewClient(testConfig(), "http://127.0.0.1:1")
	_, err := client.Destroy(context.Background(), "", ResourceImage)
	assert.Error(t, err)
}

func TestSignatureIsDeterministic(t *testing.T) {
	client := NewClient(testConfig(), "")

	params := map[string]string{
		"folder":    "nextgen-ev",
		"timestamp": "1700000000",
	}
	// sorted pairs joined with '&' plus the secret, SHA-1 hex
	assert.Equal(t, client.sign(params), client.sign(params))
	assert.NotEqual(t, client.sign(params), client.sign(map[string]string{
		"folder":    "nextgen-ev",
		"timestamp": "1700000001",
	}))
}
