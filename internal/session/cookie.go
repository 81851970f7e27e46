// File: internal/session/cookie.go
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName 為瀏覽器端存放 session token 的 cookie 名稱
const CookieName = "session_token"

// SetCookie 將 token 寫入 HttpOnly cookie
func SetCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie 使 cookie 立即過期
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromCookie 讀取請求中的 session token，cookie 不存在或為空時回傳 ErrNotFound
func TokenFromCookie(c echo.Context) (string, error) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return "", ErrNotFound
	}
	return ck.Value, nil
}
