//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/jwt"
	"bibliolights/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_Identify(t *testing.T) {
	const secret = "identify-secret"
	svc := jwt.NewService(secret, time.Hour)
	validator := usecase.NewTokenValidator(svc)

	t.Run("admin token", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		identity, err := validator.Identify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("unknown role", func(t *testing.T) {
		userID := uuid.New()
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			UserID: userID,
			Role:   "librarian",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				Subject:   userID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = validator.Identify(token)
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwt.NewService(secret, -time.Minute).GenerateToken(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		_, err = validator.Identify(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
