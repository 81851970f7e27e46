package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"microblog/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {

	// 有 session：銷毀並清除 cookie
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	destroyed := ""
	h := LogoutHandler(&session.FakeStore{
		DestroyFn: func(_ context.Context, token string) error {
			destroyed = token
			return nil
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, "tok", destroyed)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Negative(t, cookies[0].MaxAge)

	// 銷毀失敗不影響導向
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	rec = httptest.NewRecorder()
	ctx = e.NewContext(req, rec)
	h = LogoutHandler(&session.FakeStore{
		DestroyFn: func(context.Context, string) error { return errors.New("redis down") },
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusFound, rec.Code)

	// 無 cookie 也導回登入頁
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec = httptest.NewRecorder()
	ctx = e.NewContext(req, rec)
	h = LogoutHandler(&session.FakeStore{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusFound, rec.Code)
}
