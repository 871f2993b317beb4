// Package assetrelay proxies media uploads and deletions to the Cloudinary
// API. It performs no size/type validation of its own; callers are expected to
// have checked the payload before invoking it.
package assetrelay

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/nextgeneev/nextgen-ev/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	ResourceImage = "image"
	ResourceVideo = "video"
	ResourceAuto  = "auto"

	// Processing hints mirroring the upload dashboard's expectations:
	// images are bounded to full HD with automatic quality/format, large
	// videos get an eager HLS derivative.
	imageTransformation = "c_limit,h_1080,w_1920/q_auto:good/f_auto"
	videoEager          = "sp_hd/m3u8"
)

// UploadInput is one binary payload to forward.
type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult is the relay's view of a stored remote asset.
type UploadResult struct {
	Url          string `json:"url"`
	PublicId     string `json:"publicId"`
	ResourceType string `json:"resourceType"`
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Bytes        int64  `json:"bytes"`
}

type DestroyResult struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}

type Client struct {
	cfg      config.CloudinaryConfig
	endpoint string
	now      func() time.Time
}

// NewClient builds a Cloudinary client from configuration. An empty endpoint
// selects the public API host; tests point it at a local double.
func NewClient(cfg config.CloudinaryConfig, endpoint string) *Client {
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", cfg.CloudName)
	}
	return &Client{cfg: cfg, endpoint: strings.TrimRight(endpoint, "/"), now: time.Now}
}

// BaseFolder returns the configured root folder for uploads.
func (c *Client) BaseFolder() string {
	return c.cfg.BaseFolder
}

type uploadResponse struct {
	SecureUrl    string `json:"secure_url"`
	PublicId     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Bytes        int64  `json:"bytes"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload forwards a file to the remote host and returns the stored asset's
// durable URL and deletion handle. Any non-success response is a single total
// failure; there is no partial-upload recovery.
func (c *Client) Upload(ctx context.Context, in UploadInput, folder, resourceType string) (*UploadResult, error) {
	if len(in.Data) == 0 {
		return nil, errors.New("no file provided")
	}
	if folder == "" {
		folder = c.cfg.BaseFolder
	}
	if resourceType == "" {
		resourceType = ResourceAuto
	}

	params := map[string]string{
		"folder":    folder,
		"timestamp": fmt.Sprintf("%d", c.now().Unix()),
	}
	switch resourceType {
	case ResourceImage:
		params["transformation"] = imageTransformation
	case ResourceVideo:
		params["eager"] = videoEager
		params["eager_async"] = "true"
	}

	form := gout.H{
		"file":      dataURI(in),
		"api_key":   c.cfg.ApiKey,
		"signature": c.sign(params),
	}
	for k, v := range params {
		form[k] = v
	}

	var (
		resp uploadResponse
		code int
	)
	err := gout.POST(fmt.Sprintf("%s/%s/upload", c.endpoint, resourceType)).
		WithContext(ctx).
		SetWWWForm(form).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "upload failed")
	}
	if code != http.StatusOK {
		msg := resp.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", code)
		}
		return nil, errors.Errorf("upload failed: %s", msg)
	}

	zap.L().Info("asset uploaded",
		zap.String("public_id", resp.PublicId),
		zap.String("resource_type", resp.ResourceType),
		zap.Int64("bytes", resp.Bytes))

	return &UploadResult{
		Url:          resp.SecureUrl,
		PublicId:     resp.PublicId,
		ResourceType: resp.ResourceType,
		Format:       resp.Format,
		Width:        resp.Width,
		Height:       resp.Height,
		Bytes:        resp.Bytes,
	}, nil
}

type destroyResponse struct {
	Result string `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Destroy removes a remote asset by its public id. Deleting an unknown id is
// not an error; the remote host reports "not found" and callers clear the
// local reference regardless.
func (c *Client) Destroy(ctx context.Context, publicID, resourceType string) (*DestroyResult, error) {
	if publicID == "" {
		return nil, errors.New("no public ID provided")
	}
	if resourceType == "" {
		resourceType = ResourceImage
	}

	params := map[string]string{
		"public_id":  publicID,
		"invalidate": "true",
		"timestamp":  fmt.Sprintf("%d", c.now().Unix()),
	}
	form := gout.H{
		"api_key":   c.cfg.ApiKey,
		"signature": c.sign(params),
	}
	for k, v := range params {
		form[k] = v
	}

	var (
		resp destroyResponse
		code int
	)
	err := gout.POST(fmt.Sprintf("%s/%s/destroy", c.endpoint, resourceType)).
		WithContext(ctx).
		SetWWWForm(form).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "delete failed")
	}
	if code != http.StatusOK {
		msg := resp.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", code)
		}
		return nil, errors.Errorf("delete failed: %s", msg)
	}

	zap.L().Info("asset destroyed",
		zap.String("public_id", publicID),
		zap.String("result", resp.Result))

	return &DestroyResult{Success: true, Result: resp.Result}, nil
}

// sign builds the Cloudinary request signature: sorted key=value pairs joined
// with '&', followed by the API secret, hashed with SHA-1.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	payload := strings.Join(pairs, "&") + c.cfg.ApiSecret
	return fmt.Sprintf("%x", sha1.Sum([]byte(payload)))
}

func dataURI(in UploadInput) string {
	ct := in.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", ct, base64.StdEncoding.EncodeToString(in.Data))
}
