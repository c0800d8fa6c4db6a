//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/handler/middleware"
	"bibliolights/tests/common/httptest"
	usecasemock "bibliolights/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(validator *usecasemock.MockTokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(validator)

	whoami := func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID, "role": identity.Role})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), whoami)
	r.GET("/misconfigured", auth.RequireAdmin(), whoami)
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		token      string
		setupMock  func(m *usecasemock.MockTokenValidator)
		expectCode int
		expectMsg  string
	}{
		{
			name:       "valid token",
			token:      "good",
			setupMock:  func(m *usecasemock.MockTokenValidator) { m.EXPECT().Identify("good").Return(user.Identity{UserID: userID, Role: user.RoleCustomer}, nil) },
			expectCode: http.StatusOK,
		},
		{
			name:       "missing token",
			setupMock:  func(*usecasemock.MockTokenValidator) {},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Access token required",
		},
		{
			name:  "rejected token",
			token: "expired",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().Identify("expired").Return(user.Identity{}, errors.New("token is expired"))
			},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)

			rec := httptest.PerformRequest(t, newRouter(validator), http.MethodGet, "/me", nil, tc.token)

			if tc.expectCode == http.StatusOK {
				var body map[string]string
				httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
				assert.Equal(t, userID.String(), body["user_id"])
				assert.Equal(t, "customer", body["role"])
				return
			}
			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().Identify("admin").Return(user.Identity{UserID: uuid.New(), Role: user.RoleAdmin}, nil)

		rec := httptest.PerformRequest(t, newRouter(validator), http.MethodGet, "/admin", nil, "admin")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().Identify("customer").Return(user.Identity{UserID: uuid.New(), Role: user.RoleCustomer}, nil)

		rec := httptest.PerformRequest(t, newRouter(validator), http.MethodGet, "/admin", nil, "customer")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Administrator access required")
	})

	t.Run("without RequireAuth is a server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newRouter(validator), http.MethodGet, "/misconfigured", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
