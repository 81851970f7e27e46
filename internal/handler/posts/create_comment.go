// File: internal/handler/posts/create_comment.go
package posts

import (
	"net/http"
	"strconv"

	"microblog/internal/api"
	"microblog/internal/database"
	"microblog/internal/middleware"
	"microblog/internal/model"
	"microblog/internal/session"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateCommentHandler 對指定貼文新增留言，成功後導回動態牆
// @Summary     新增留言
// @Accept      application/x-www-form-urlencoded
// @Router      /comment/{post_id} [post]
func CreateCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		postID, err := strconv.Atoi(c.Param("post_id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "invalid post id")
		}

		var req api.CreateCommentRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid form data")
		}

		sess := c.Get(middleware.ContextUserKey).(*session.Session)
		comment := &model.Comment{
			Content: req.Content,
			PostID:  postID,
			UserID:  sess.UserID,
		}
		if _, err := store.CreateComment(c.Request().Context(), db, comment); err != nil {
			return c.String(http.StatusInternalServerError, "failed to create comment")
		}

		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
