package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/nextgeneev/nextgen-ev/internal/webserver"
)

type createProductPayload struct {
	Category string `json:"category" form:"category"`
}

// registerProductRoutes registers the product record CRUD endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/export", exportProducts)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
	webserver.ApiPOST("/products/:id/image", attachProductImage)
}

func listProducts(c echo.Context) error {
	category, okc := categoryParam(c)
	store := GetApp(c).Store()
	if okc {
		return ok(c, store.Products(category))
	}
	// no category filter: both lists keyed by category
	return ok(c, map[string]interface{}{
		domain.CategoryTwoWheeler:   store.Products(domain.CategoryTwoWheeler),
		domain.CategoryThreeWheeler: store.Products(domain.CategoryThreeWheeler),
	})
}

func createProduct(c echo.Context) error {
	var payload createProductPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	category, okc := domain.CategoryFromSlug(payload.Category)
	if !okc {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category must be '2-Wheeler' or '3-Wheeler'", nil)
	}
	p, err := GetApp(c).Products().Create(category)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create product", err.Error())
	}
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	category, okc := categoryParam(c)
	if !okc {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category must be '2-Wheeler' or '3-Wheeler'", nil)
	}

	partial := map[string]interface{}{}
	if err := c.Bind(&partial); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	if err := GetApp(c).Products().Update(c.Request().Context(), category, id, partial); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	category, okc := categoryParam(c)
	if !okc {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category must be '2-Wheeler' or '3-Wheeler'", nil)
	}
	if err := GetApp(c).Products().Delete(c.Request().Context(), category, id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete product", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

// attachProductImage uploads an image for an edit session. The stored record
// is untouched until the dashboard commits the edit via PUT.
func attachProductImage(c echo.Context) error {
	if _, err := strconv.ParseInt(c.Param("id"), 10, 64); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	category, okc := categoryParam(c)
	if !okc {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Category must be '2-Wheeler' or '3-Wheeler'", nil)
	}
	in, err := formFile(c, "file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "No file provided", nil)
	}
	ref, err := GetApp(c).Products().AttachImage(c.Request().Context(), category, in)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to upload image", err.Error())
	}
	return ok(c, ref)
}
