// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"microblog/internal/session"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 銷毀 session、清除 cookie 並導回登入頁
// @Summary     登出使用者
// @Router      /logout [get]
func LogoutHandler(sessions session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, err := session.TokenFromCookie(c); err == nil {
			// 銷毀失敗不擋登出流程，cookie 一律清除
			_ = sessions.Destroy(c.Request().Context(), token)
		}
		session.ClearCookie(c)
		return c.Redirect(http.StatusFound, "/login")
	}
}
