package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nextgeneev/nextgen-ev/internal/assetrelay"
	"github.com/nextgeneev/nextgen-ev/internal/webserver"
	"go.uber.org/zap"
)

type deletePayload struct {
	PublicId     string `json:"publicId" form:"publicId"`
	ResourceType string `json:"resourceType" form:"resourceType"`
}

// registerRelayRoutes wires the asset relay endpoints. They live on the
// public group and speak the exact wire contract the dashboard expects.
func registerRelayRoutes() {
	webserver.PubPOST("/upload", uploadAsset)
	webserver.PubPOST("/cloudinary-delete", deleteAsset)
}

// uploadAsset accepts multipart fields file/folder/resourceType and forwards
// the payload to the remote asset host.
func uploadAsset(c echo.Context) error {
	in, err := formFile(c, "file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "No file provided",
		})
	}
	folder := c.FormValue("folder")
	resourceType := c.FormValue("resourceType")

	res, err := GetApp(c).Relay().Upload(c.Request().Context(), in, folder, resourceType)
	if err != nil {
		zap.L().Error("upload relay failed", zap.String("file", in.FileName), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "Upload failed",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"url":          res.Url,
		"publicId":     res.PublicId,
		"resourceType": res.ResourceType,
		"format":       res.Format,
		"width":        res.Width,
		"height":       res.Height,
		"bytes":        res.Bytes,
	})
}

// deleteAsset removes a remote asset by public id. Unknown ids are not an
// error; the local reference is being cleared regardless.
func deleteAsset(c echo.Context) error {
	var payload deletePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Unable to parse request",
		})
	}
	if payload.PublicId == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "No public ID provided",
		})
	}
	resourceType := payload.ResourceType
	if resourceType == "" {
		resourceType = assetrelay.ResourceImage
	}

	res, err := GetApp(c).Relay().Destroy(c.Request().Context(), payload.PublicId, resourceType)
	if err != nil {
		zap.L().Error("delete relay failed", zap.String("public_id", payload.PublicId), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Delete failed",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": res.Success,
		"result":  res.Result,
	})
}
