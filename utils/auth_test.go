package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
	})
	r.Use(RequireRole("admin"))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name string
		role string
		want int
	}{
		{"admin passes", "admin", http.StatusOK},
		{"staff is rejected", "staff", http.StatusForbidden},
		{"missing role is rejected", "", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			roleRouter(tc.role).ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAuthMiddlewareFeedsRoleCheck(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-1234")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(), RequireRole("admin"))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	serve := func(token string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	adminToken, err := GenerateToken("user-1", "admin")
	require.NoError(t, err)
	staffToken, err := GenerateToken("user-2", "staff")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, serve(adminToken))
	assert.Equal(t, http.StatusForbidden, serve(staffToken))
	assert.Equal(t, http.StatusUnauthorized, serve(""))
	assert.Equal(t, http.StatusUnauthorized, serve("not-a-token"))
}
