package siteapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// catalogEvents streams catalog change notifications as server-sent events.
// Clients reload their cached lists on each catalogUpdated event, mirroring
// how the dashboard and storefront tabs stay in sync.
func catalogEvents(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	updates := make(chan struct{}, 1)
	handler := func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	}

	notifier := getApp(c).Notifier()
	if err := notifier.Subscribe(handler); err != nil {
		return err
	}
	defer func() {
		if err := notifier.Unsubscribe(handler); err != nil {
			zap.L().Warn("event feed unsubscribe failed", zap.Error(err))
		}
	}()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
			if _, err := fmt.Fprint(w, "event: catalogUpdated\ndata: {}\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
