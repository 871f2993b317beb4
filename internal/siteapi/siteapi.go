// Package siteapi implements the public read and form endpoints consumed by
// the storefront: vehicle listings, media lookups, contact and dealership
// submissions and the catalog change feed.
package siteapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nextgeneev/nextgen-ev/internal/app"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/nextgeneev/nextgen-ev/internal/webserver"
)

// RegisterRoutes wires the storefront endpoints onto the public group.
func RegisterRoutes() {
	webserver.PubGET("/vehicles", listVehicles)
	webserver.PubGET("/media", listMedia)
	webserver.PubPOST("/contact", submitContact)
	webserver.PubPOST("/dealership", submitDealership)
	webserver.PubGET("/dealership", dealershipNotAllowed)
	webserver.PubGET("/events", catalogEvents)
}

func getApp(c echo.Context) app.WebContext {
	return webserver.GetAppContext(c)
}

// listVehicles returns the product records for one category, selected by the
// type query (2w or 3w, full names also accepted).
func listVehicles(c echo.Context) error {
	category, okc := domain.CategoryFromSlug(strings.TrimSpace(c.QueryParam("type")))
	if !okc {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid vehicle type",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"category": category,
		"vehicles": getApp(c).Store().Products(category),
	})
}

// listMedia returns the hero video and both gallery lists in one response.
func listMedia(c echo.Context) error {
	store := getApp(c).Store()
	hero, _ := store.HeroVideo()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"heroVideo":        hero,
		"twoWheelerUrls":   store.Gallery(domain.CategoryTwoWheeler),
		"threeWheelerUrls": store.Gallery(domain.CategoryThreeWheeler),
	})
}

func submitContact(c echo.Context) error {
	var form domain.ContactForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Unable to parse request",
		})
	}
	if err := form.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := getApp(c).Mailer().SendContact(form); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to send email. Please try again later.",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Email sent successfully",
	})
}

func submitDealership(c echo.Context) error {
	var form domain.DealershipForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Unable to parse request",
		})
	}
	if err := form.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := getApp(c).Mailer().SendDealership(form); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to send email. Please try again later.",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Application submitted successfully",
	})
}

func dealershipNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, map[string]interface{}{
		"error": "Method not allowed",
	})
}
