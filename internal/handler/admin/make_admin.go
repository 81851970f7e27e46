// File: internal/handler/admin/make_admin.go
package admin

import (
	"net/http"
	"strconv"

	"microblog/internal/database"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// MakeAdminHandler 將指定使用者升級為管理員，成功後導回使用者清單
// 升級前先確認對象存在；升級不會動到對方既有的 session，新權限於下次登入才生效
// @Summary     升級為管理員
// @Router      /make-admin/{id} [post]
func MakeAdminHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "invalid user id")
		}

		if _, err := store.GetUserByID(c.Request().Context(), db, userID); err != nil {
			return c.String(http.StatusNotFound, "user not found")
		}

		if err := store.PromoteUser(c.Request().Context(), db, userID); err != nil {
			return c.String(http.StatusInternalServerError, "failed to promote user")
		}

		return c.Redirect(http.StatusFound, "/admin")
	}
}
