// File: internal/handler/feed/dashboard.go
package feed

import (
	"net/http"

	"microblog/internal/database"
	"microblog/internal/dto"
	"microblog/internal/middleware"
	"microblog/internal/session"
	"microblog/internal/store"

	"github.com/labstack/echo/v4"
)

// DashboardHandler 取回全部貼文與留言，攤平成顯示結構後渲染動態牆
// 全表讀取、無分頁，排序為 created_at 新到舊
// @Summary     動態牆
// @Router      /dashboard [get]
func DashboardHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		sess := c.Get(middleware.ContextUserKey).(*session.Session)

		posts, err := store.ListFeedPosts(ctx, db)
		if err != nil {
			return c.String(http.StatusInternalServerError, "failed to load feed")
		}
		comments, err := store.ListFeedComments(ctx, db)
		if err != nil {
			return c.String(http.StatusInternalServerError, "failed to load feed")
		}

		// 依貼文 id 分組留言
		byPost := map[int][]dto.FeedComment{}
		for _, cm := range comments {
			byPost[cm.PostID] = append(byPost[cm.PostID], dto.FeedComment{
				Content: cm.Content,
				Email:   cm.Email,
			})
		}

		feed := make([]dto.FeedPost, 0, len(posts))
		for _, p := range posts {
			feed = append(feed, dto.FeedPost{
				ID:       p.ID,
				UserID:   p.UserID,
				Content:  p.Content,
				Email:    p.Email,
				Comments: byPost[p.ID],
			})
		}

		return c.Render(http.StatusOK, "dashboard.html", map[string]interface{}{
			"User":  sess,
			"Posts": feed,
		})
	}
}
