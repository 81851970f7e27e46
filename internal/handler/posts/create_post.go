// File: internal/handler/posts/create_post.go
package posts

import (
	"net/http"

	"microblog/internal/api"
	"microblog/internal/database"
	"microblog/internal/middleware"
	"microblog/internal/model"
	"microblog/internal/session"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// CreatePostHandler 以 session 使用者身分新增貼文，成功後導回動態牆
// 寫入失敗會回 500，不會假裝成功
// @Summary     新增貼文
// @Accept      application/x-www-form-urlencoded
// @Router      /post [post]
func CreatePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePostRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid form data")
		}

		sess := c.Get(middleware.ContextUserKey).(*session.Session)
		post := &model.Post{
			Content: req.Content,
			UserID:  sess.UserID,
		}
		if _, err := store.CreatePost(c.Request().Context(), db, post); err != nil {
			return c.String(http.StatusInternalServerError, "failed to create post")
		}

		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
