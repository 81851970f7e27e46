package middleware

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

func newCtx(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuth(t *testing.T) {
	t.Run("no cookie redirects to login", func(t *testing.T) {
		ctx, rec := newCtx(nil)
		h := RequireAuth(&session.FakeStore{})(func(c echo.Context) error {
			t.Fatal("next should not be called")
			return nil
		})
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("invalid session redirects and clears cookie", func(t *testing.T) {
		ctx, rec := newCtx(&http.Cookie{Name: session.CookieName, Value: "bad"})
		store := &session.FakeStore{
			GetFn: func(ctx context.Context, token string) (*session.Session, error) {
				return nil, session.ErrNotFound
			},
		}
		h := RequireAuth(store)(func(c echo.Context) error {
			t.Fatal("next should not be called")
			return nil
		})
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Negative(t, cookies[0].MaxAge)
	})

	t.Run("valid session sets context user", func(t *testing.T) {
		ctx, _ := newCtx(&http.Cookie{Name: session.CookieName, Value: "tok"})
		store := &session.FakeStore{
			GetFn: func(ctx context.Context, token string) (*session.Session, error) {
				require.Equal(t, "tok", token)
				return &session.Session{UserID: 3, Email: "a@x.com"}, nil
			},
		}
		called := false
		h := RequireAuth(store)(func(c echo.Context) error {
			called = true
			sess := c.Get(ContextUserKey).(*session.Session)
			require.Equal(t, 3, sess.UserID)
			return nil
		})
		require.NoError(t, h(ctx))
		require.True(t, called)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("non-admin gets 403", func(t *testing.T) {
		ctx, _ := newCtx(&http.Cookie{Name: session.CookieName, Value: "tok"})
		store := &session.FakeStore{
			GetFn: func(ctx context.Context, token string) (*session.Session, error) {
				return &session.Session{UserID: 3}, nil
			},
		}
		h := RequireAdmin(store)(func(c echo.Context) error {
			t.Fatal("next should not be called")
			return nil
		})
		err := h(ctx)
		require.Error(t, err)
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		require.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		ctx, _ := newCtx(&http.Cookie{Name: session.CookieName, Value: "tok"})
		store := &session.FakeStore{
			GetFn: func(ctx context.Context, token string) (*session.Session, error) {
				return &session.Session{UserID: 3, IsAdmin: true}, nil
			},
		}
		called := false
		h := RequireAdmin(store)(func(c echo.Context) error {
			called = true
			return nil
		})
		require.NoError(t, h(ctx))
		require.True(t, called)
	})

	t.Run("anonymous redirects to login", func(t *testing.T) {
		ctx, rec := newCtx(nil)
		h := RequireAdmin(&session.FakeStore{})(func(c echo.Context) error {
			t.Fatal("next should not be called")
			return nil
		})
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusFound, rec.Code)
	})
}
