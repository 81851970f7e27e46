// File: internal/handler/home.go
package handler

import (
	"net/http"

	"microblog/internal/session"

	"github.com/labstack/echo/v4"
)

// HomeHandler 依登入狀態導向動態牆或登入頁
// @Summary     首頁導向
// @Router      / [get]
func HomeHandler(sessions session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := session.TokenFromCookie(c)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		if _, err := sessions.Get(c.Request().Context(), token); err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
