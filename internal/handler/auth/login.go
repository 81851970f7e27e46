// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"microblog/internal/api"
	"microblog/internal/database"
	"microblog/internal/service"
	"microblog/internal/session"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// SessionTTL 為登入後 session 的存活時間，無輪替、無展延
const SessionTTL = 24 * time.Hour

// LoginPageHandler 顯示登入表單
func LoginPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "login.html", nil)
	}
}

// LoginHandler 驗證帳密並建立 session，成功後導向動態牆
// @Summary     登入使用者
// @Accept      application/x-www-form-urlencoded
// @Router      /login [post]
func LoginHandler(db database.DB, sessions session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid form data")
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}

		// 撈使用者資料
		user, err := store.GetUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.String(http.StatusUnauthorized, "user not found")
		}

		// 驗證密碼
		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.String(http.StatusUnauthorized, "wrong password")
		}

		// 建立 session 並寫入 cookie
		token, err := sessions.Create(c.Request().Context(), session.Session{
			UserID:  user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		})
		if err != nil {
			return c.String(http.StatusInternalServerError, "failed to create session")
		}
		session.SetCookie(c, token, SessionTTL)

		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
