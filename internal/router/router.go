// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"microblog/internal/database"
	"microblog/internal/handler"
	"microblog/internal/handler/admin"
	"microblog/internal/handler/auth"
	"microblog/internal/handler/feed"
	"microblog/internal/handler/posts"
	"microblog/internal/middleware"
	"microblog/internal/session"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, sessions session.Store) {
	requireAuth := middleware.RequireAuth(sessions)
	requireAdmin := middleware.RequireAdmin(sessions)

	// 首頁依登入狀態導向
	e.GET("/", handler.HomeHandler(sessions))

	// 註冊與登入（匿名可達）
	e.GET("/register", auth.RegisterPageHandler())
	e.POST("/register", auth.RegisterHandler(db))
	e.GET("/login", auth.LoginPageHandler())
	e.POST("/login", auth.LoginHandler(db, sessions))
	e.GET("/logout", auth.LogoutHandler(sessions), requireAuth)

	// 動態牆與互動（需登入）
	e.GET("/dashboard", feed.DashboardHandler(db), requireAuth)
	e.POST("/post", posts.CreatePostHandler(db), requireAuth)
	e.POST("/comment/:post_id", posts.CreateCommentHandler(db), requireAuth)
	e.POST("/like/:post_id", posts.LikePostHandler(db), requireAuth)
	e.POST("/follow/:user_id", posts.FollowUserHandler(db), requireAuth)

	// 管理員專屬
	e.GET("/admin", admin.ListUsersHandler(db), requireAdmin)
	e.POST("/make-admin/:id", admin.MakeAdminHandler(db), requireAdmin)
}
