package usecase

import (
	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller identity the core works with.
type TokenValidator interface {
	Identify(tokenString string) (user.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// Identify accepts only tokens naming a known role; anything else is as good as no token.
func (t *tokenValidatorImpl) Identify(tokenString string) (user.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Identity{}, errs.Wrapf(err, "token for user %s", claims.UserID)
	}

	return user.Identity{UserID: claims.UserID, Role: role}, nil
}
