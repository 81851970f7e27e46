package middleware

import (
	"net/http"

	"microblog/internal/session"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// RequireAuth 驗證 session cookie，未登入時導回登入頁
// 驗證成功會將 *session.Session 放入 context 供 handler 取用
func RequireAuth(sessions session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := session.TokenFromCookie(c)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			sess, err := sessions.Get(c.Request().Context(), token)
			if err != nil {
				// session 無效或已過期，順手清掉殘留的 cookie
				session.ClearCookie(c)
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(ContextUserKey, sess)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上再檢查管理員旗標，非管理員回 403
func RequireAdmin(sessions session.Store) echo.MiddlewareFunc {
	auth := RequireAuth(sessions)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			sess := c.Get(ContextUserKey).(*session.Session)
			if !sess.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}
