// File: internal/handler/posts/like_post.go
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

// LikePostHandler 以 session 使用者身分按讚，重複按讚為 no-op
// @Summary     按讚貼文
// @Router      /like/{post_id} [post]
func LikePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		postID, err := strconv.Atoi(c.Param("post_id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "invalid post id")
		}

		sess := c.Get(middleware.ContextUserKey).(*session.Session)
		like := &model.Like{PostID: postID, UserID: sess.UserID}
		if err := store.CreateLike(c.Request().Context(), db, like); err != nil {
			return c.String(http.StatusInternalServerError, "failed to like post")
		}

		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
