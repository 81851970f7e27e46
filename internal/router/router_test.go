package router

import (
	"net/http"
	"testing"

	"microblog/internal/database"
	"microblog/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &session.FakeStore{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /register",
		http.MethodPost + " /register",
		http.MethodGet + " /login",
		http.MethodPost + " /login",
		http.MethodGet + " /logout",
		http.MethodGet + " /dashboard",
		http.MethodPost + " /post",
		http.MethodPost + " /comment/:post_id",
		http.MethodPost + " /like/:post_id",
		http.MethodPost + " /follow/:user_id",
		http.MethodGet + " /admin",
		http.MethodPost + " /make-admin/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
