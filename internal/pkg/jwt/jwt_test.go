//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-bibliolights"

func sign(t *testing.T, claims jwt.Claims, method gojwt.SigningMethod, key any) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jwt.Issuer, claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)
	userID := uuid.New()
	valid := func() jwt.Claims {
		return jwt.Claims{
			UserID: userID,
			Role:   "customer",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				Subject:   userID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	testCases := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:  "well formed",
			token: func(t *testing.T) string { return sign(t, valid(), gojwt.SigningMethodHS256, []byte(secret)) },
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(t, c, gojwt.SigningMethodHS256, []byte(secret))
			},
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				c := valid()
				c.Issuer = "someone-else"
				return sign(t, c, gojwt.SigningMethodHS256, []byte(secret))
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = nil
				return sign(t, c, gojwt.SigningMethodHS256, []byte(secret))
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "other signing method",
			token: func(t *testing.T) string {
				return sign(t, valid(), gojwt.SigningMethodHS512, []byte(secret))
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "wrong secret",
			token:   func(t *testing.T) string { return sign(t, valid(), gojwt.SigningMethodHS256, []byte("other")) },
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "no user",
			token: func(t *testing.T) string {
				c := valid()
				c.UserID = uuid.Nil
				c.Subject = ""
				return sign(t, c, gojwt.SigningMethodHS256, []byte(secret))
			},
			wantErr: jwt.ErrMissingUser,
		},
		{
			name: "subject names another user",
			token: func(t *testing.T) string {
				c := valid()
				c.Subject = uuid.NewString()
				return sign(t, c, gojwt.SigningMethodHS256, []byte(secret))
			},
			wantErr: jwt.ErrMissingUser,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not-a-token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tc.token(t))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestService_GenerateToken_RequiresUser(t *testing.T) {
	_, err := jwt.NewService(secret, time.Hour).GenerateToken(uuid.Nil, user.RoleCustomer)
	require.ErrorIs(t, err, jwt.ErrMissingUser)
}
