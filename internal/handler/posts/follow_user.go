// File: internal/handler/posts/follow_user.go
package posts

import (
	"net/http"
	"strconv"

	"microblog/internal/database"
	"microblog/internal/middleware"
	"microblog/internal/model"
	"microblog/internal/session"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// FollowUserHandler 以 session 使用者身分追蹤他人，重複追蹤為 no-op
// 不允許追蹤自己
// @Summary     追蹤使用者
// @Router      /follow/{user_id} [post]
func FollowUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "invalid user id")
		}

		sess := c.Get(middleware.ContextUserKey).(*session.Session)
		if userID == sess.UserID {
			return c.String(http.StatusBadRequest, "cannot follow yourself")
		}
		follow := &model.Follow{FollowerID: sess.UserID, FollowingID: userID}
		if err := store.CreateFollow(c.Request().Context(), db, follow); err != nil {
			return c.String(http.StatusInternalServerError, "failed to follow user")
		}

		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
