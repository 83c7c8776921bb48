package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kmteams/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter() *gin.Engine {
	r := gin.New()
	r.POST("/protected", AuthMiddleware([]string{auth.PermissionAdmin}), func(c *gin.Context) {
		c.Status(204)
	})
	return r
}

func tokenFor(t *testing.T, permissions []string, validFor time.Duration) string {
	token, err := auth.CreateToken(1, permissions, validFor)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	r := newProtectedRouter()
	cases := []struct {
		name   string
		setup  func(req *http.Request)
		status int
	}{
		{"no credentials", func(req *http.Request) {}, 401},
		{"garbage token", func(req *http.Request) { req.Header.Set("Authorization", "Bearer nope") }, 401},
		{"expired token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, []string{auth.PermissionAdmin}, -time.Hour))
		}, 401},
		{"missing permission", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, []string{"viewer"}, time.Hour))
		}, 403},
		{"admin header", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, []string{auth.PermissionAdmin}, time.Hour))
		}, 204},
		{"admin cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "auth", Value: tokenFor(t, []string{auth.PermissionAdmin}, time.Hour)})
		}, 204},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
