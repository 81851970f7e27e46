// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"strings"

	"microblog/internal/api"
	"microblog/internal/database"
	"microblog/internal/model"
	"microblog/internal/service"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterPageHandler 顯示註冊表單
func RegisterPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "register.html", nil)
	}
}

// RegisterHandler 建立新帳號（is_admin 固定為 false），成功後導向登入頁
// @Summary     註冊使用者
// @Accept      application/x-www-form-urlencoded
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid form data")
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		// 密碼哈希
		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.String(http.StatusInternalServerError, "failed to hash password")
		}

		// 建立使用者（email 唯一性交由資料庫約束把關）
		user := &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			IsAdmin:      false,
		}
		if _, err := store.CreateUser(c.Request().Context(), db, user); err != nil {
			return c.String(http.StatusBadRequest, "registration failed")
		}

		return c.Redirect(http.StatusFound, "/login")
	}
}
