// Package webserver hosts the HTTP surface: public catalog/read routes under
// /api and the JWT-guarded admin routes under /api/admin.
package webserver

import (
	"fmt"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nextgeneev/nextgen-ev/internal/app"
	"go.uber.org/zap"
)

// ContextAppKey is the echo context key carrying the application context.
const ContextAppKey = "nextgenev_appctx"

type WebServer struct {
	appctx app.WebContext
	root   *echo.Echo
	pub    *echo.Group
	admin  *echo.Group
}

var server *WebServer

// Init builds the process-wide web server instance. Route registration
// happens afterwards through the Pub*/Api* helpers.
func Init(appctx app.WebContext) {
	server = NewWebServer(appctx)
}

func Instance() *WebServer {
	return server
}

func NewWebServer(appctx app.WebContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(injectAppContext(appctx))
	e.Use(zapLogger)

	pub := e.Group("/api")
	admin := e.Group("/api/admin")
	admin.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(appctx.Config().Web.Secret),
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/admin/login"
		},
	}))

	return &WebServer{appctx: appctx, root: e, pub: pub, admin: admin}
}

func injectAppContext(appctx app.WebContext) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextAppKey, appctx)
			return next(c)
		}
	}
}

func zapLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		zap.L().Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)))
		return nil
	}
}

// GetAppContext retrieves the application context installed by the server
// middleware.
func GetAppContext(c echo.Context) app.WebContext {
	return c.Get(ContextAppKey).(app.WebContext)
}

func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// Listen blocks serving HTTP on the configured address.
func Listen() error {
	cfg := server.appctx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("Web server listening on %s", addr)
	return server.root.Start(addr)
}

func Shutdown() {
	if server != nil {
		_ = server.root.Close()
	}
}

// Public route registration (/api/...).
func PubGET(path string, h echo.HandlerFunc)  { server.pub.GET(path, h) }
func PubPOST(path string, h echo.HandlerFunc) { server.pub.POST(path, h) }

// Admin route registration (/api/admin/...), JWT-guarded except login.
func ApiGET(path string, h echo.HandlerFunc)    { server.admin.GET(path, h) }
func ApiPOST(path string, h echo.HandlerFunc)   { server.admin.POST(path, h) }
func ApiPUT(path string, h echo.HandlerFunc)    { server.admin.PUT(path, h) }
func ApiDELETE(path string, h echo.HandlerFunc) { server.admin.DELETE(path, h) }
