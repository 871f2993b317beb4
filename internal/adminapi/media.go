package adminapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nextgeneev/nextgen-ev/internal/assetrelay"
	"github.com/nextgeneev/nextgen-ev/internal/webserver"
)

// registerMediaRoutes registers the gallery and hero video endpoints
func registerMediaRoutes() {
	webserver.ApiGET("/gallery/:category", listGallery)
	webserver.ApiPOST("/gallery/:category", uploadGallery)
	webserver.ApiDELETE("/gallery/:category/:index", removeGalleryImage)
	webserver.ApiGET("/hero-video", getHeroVideo)
	webserver.ApiPOST("/hero-video", setHeroVideo)
	webserver.ApiDELETE("/hero-video", clearHeroVideo)
}

func listGallery(c echo.Context) error {
	category, okc := categoryParam(c)
	if !okc {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category must be '2-Wheeler' or '3-Wheeler'", nil)
	}
	return ok(c, GetApp(c).Store().Gallery(category))
}

// uploadGallery uploads a multipart batch. The batch is all-or-nothing: any
// single rejection fails the whole request and nothing is appended.
func uploadGallery(c echo.Context) error {
	category, okc := categoryParam(c)
	if !okc {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category must be '2-Wheeler' or '3-Wheeler'", nil)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "No files provided", nil)
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "No files provided", nil)
	}

	files := make([]assetrelay.UploadInput, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to read file", err.Error())
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to read file", err.Error())
		}
		files = append(files, assetrelay.UploadInput{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	refs, err := GetApp(c).Media().UploadMany(c.Request().Context(), category, files)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Upload failed", err.Error())
	}
	return ok(c, refs)
}

func removeGalleryImage(c echo.Context) error {
	category, okc := categoryParam(c)
	if !okc {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category must be '2-Wheeler' or '3-Wheeler'", nil)
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_INDEX", "Invalid gallery index", nil)
	}
	if err := GetApp(c).Media().RemoveAt(c.Request().Context(), category, index); err != nil {
		return fail(c, http.StatusBadRequest, "REMOVE_FAILED", "Failed to remove image", err.Error())
	}
	return ok(c, map[string]interface{}{"index": index})
}

func getHeroVideo(c echo.Context) error {
	ref, _ := GetApp(c).Store().HeroVideo()
	return ok(c, ref)
}

func setHeroVideo(c echo.Context) error {
	in, err := formFile(c, "file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "No file provided", nil)
	}
	ref, err := GetApp(c).Media().SetHeroVideo(c.Request().Context(), in)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Upload failed", err.Error())
	}
	return ok(c, ref)
}

func clearHeroVideo(c echo.Context) error {
	if err := GetApp(c).Media().ClearHeroVideo(c.Request().Context()); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to remove video", err.Error())
	}
	return ok(c, nil)
}
