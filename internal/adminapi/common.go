// Package adminapi implements the dashboard's admin endpoints: the login
// gate, product record CRUD, gallery/hero media management and the asset
// relay routes.
package adminapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nextgeneev/nextgen-ev/internal/app"
	"github.com/nextgeneev/nextgen-ev/internal/assetrelay"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/nextgeneev/nextgen-ev/internal/webserver"
)

// RegisterRoutes wires all admin endpoints plus the public relay routes.
func RegisterRoutes() {
	registerAuthRoutes()
	registerProductRoutes()
	registerMediaRoutes()
	registerRelayRoutes()
}

func GetApp(c echo.Context) app.WebContext {
	return webserver.GetAppContext(c)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	resp := map[string]interface{}{
		"error": message,
		"code":  code,
	}
	if details != nil {
		resp["details"] = details
	}
	return c.JSON(status, resp)
}

// categoryParam resolves a category from query or path, accepting both the
// stored values and short slugs.
func categoryParam(c echo.Context) (string, bool) {
	raw := c.QueryParam("category")
	if raw == "" {
		raw = c.Param("category")
	}
	return domain.CategoryFromSlug(strings.TrimSpace(raw))
}

// formFile reads one multipart file into an upload payload.
func formFile(c echo.Context, field string) (assetrelay.UploadInput, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return assetrelay.UploadInput{}, err
	}
	f, err := fh.Open()
	if err != nil {
		return assetrelay.UploadInput{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return assetrelay.UploadInput{}, err
	}
	return assetrelay.UploadInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
