// File: internal/handler/admin/list_users.go
package admin

import (
	"net/http"

	"microblog/internal/database"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 渲染全部使用者清單（僅管理員可達，由 RequireAdmin 把關）
// @Summary     使用者清單
// @Router      /admin [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := store.ListUsers(c.Request().Context(), db)
		if err != nil {
			return c.String(http.StatusInternalServerError, "failed to list users")
		}
		return c.Render(http.StatusOK, "admin.html", map[string]interface{}{
			"Users": users,
		})
	}
}
