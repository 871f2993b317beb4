package adminapi

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/nextgeneev/nextgen-ev/internal/webserver"
	"github.com/nextgeneev/nextgen-ev/pkg/common"
	"go.uber.org/zap"
)

type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func registerAuthRoutes() {
	webserver.ApiPOST("/login", login)
	webserver.ApiPOST("/logout", logout)
	webserver.ApiGET("/session", session)
}

// login checks the configured credential pair, sets the adminAuth sentinel in
// the catalog store and mints the dashboard token.
func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", nil)
	}

	appctx := GetApp(c)
	cfg := appctx.Config()
	salt := common.GetSecretSalt()

	userOK := subtle.ConstantTimeCompare(
		[]byte(common.Sha256HashWithSalt(payload.Username, salt)),
		[]byte(common.Sha256HashWithSalt(cfg.Admin.Username, salt))) == 1
	passOK := subtle.ConstantTimeCompare(
		[]byte(common.Sha256HashWithSalt(payload.Password, salt)),
		[]byte(common.Sha256HashWithSalt(cfg.Admin.Password, salt))) == 1
	if !userOK || !passOK {
		zap.L().Warn("admin login rejected", zap.String("username", payload.Username))
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials!", nil)
	}

	if err := appctx.Store().SetAdminAuth(true); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to persist session", err.Error())
	}

	expire := time.Duration(cfg.Web.JwtExpire) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"usr": payload.Username,
		"exp": time.Now().Add(expire).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.Web.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to sign token", err.Error())
	}

	zap.L().Info("admin login accepted", zap.String("username", payload.Username))
	return ok(c, map[string]interface{}{"token": signed})
}

func logout(c echo.Context) error {
	if err := GetApp(c).Store().SetAdminAuth(false); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to clear session", err.Error())
	}
	return ok(c, nil)
}

// session is the dashboard mount check: 200 while the sentinel is present,
// 401 once cleared.
func session(c echo.Context) error {
	if !GetApp(c).Store().AdminAuth() {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated", nil)
	}
	return ok(c, map[string]interface{}{"authenticated": true})
}
