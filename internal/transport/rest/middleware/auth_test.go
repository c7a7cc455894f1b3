package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sybil/internal/service"
)

func TestRequireHost(t *testing.T) {
	t.Setenv("HOST_USERNAME", "operator")
	t.Setenv("HOST_PASSWORD", "hunter2")
	authSvc := service.NewAuthService()
	mw := NewAuthMiddleware(authSvc)

	// Echo the host ID seen by the wrapped handler so the test can
	// assert the context plumbing end to end.
	echo := mw.RequireHost(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetHostID(r.Context())))
	}))

	t.Run("valid token passes through with host ID in context", func(t *testing.T) {
		login, err := authSvc.Login("operator", "hunter2")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/upload-policy", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		rec := httptest.NewRecorder()
		echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, login.HostID, rec.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/upload-policy", nil)
		rec := httptest.NewRecorder()
		echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/upload-policy", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetHostID_EmptyWithoutMiddleware(t *testing.T) {
	assert.Equal(t, "", GetHostID(context.Background()))
}
