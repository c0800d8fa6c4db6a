//go:build unit

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	entryID := uuid.New()
	orderID := uuid.New()

	var buf bytes.Buffer
	l := newLogger(&buf, config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: "2006-01-02 15:04:05.000"})

	identify := func(c *gin.Context) {
		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, user.RoleAdmin)
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := gin.New()
	r.Use(l.LoggingMiddleware())
	r.POST("/api/books/:id/requests", identify, ok)
	r.PUT("/api/admin/orders/:id", identify, ok)
	r.GET("/health", ok)

	testCases := []struct {
		name     string
		method   string
		path     string
		contains []string
		excludes []string
	}{
		{
			name:     "book route logs the catalog entry and caller",
			method:   http.MethodPost,
			path:     "/api/books/" + entryID.String() + "/requests",
			contains: []string{"catalog_entry_id=" + entryID.String(), "user_id=" + userID.String(), "role=admin", "status_code=200"},
		},
		{
			name:     "order route logs the order id",
			method:   http.MethodPut,
			path:     "/api/admin/orders/" + orderID.String(),
			contains: []string{"order_id=" + orderID.String()},
			excludes: []string{"catalog_entry_id"},
		},
		{
			name:     "anonymous route has no identity",
			method:   http.MethodGet,
			path:     "/health",
			excludes: []string{"user_id", "role=", "_id=" + entryID.String()},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			out := buf.String()
			assert.Contains(t, out, "Request completed")
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
