package usecase

import (
	"skybook/internal/pkg/errs"
	"skybook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator verifies access tokens for the auth middleware without
// exposing the signing service itself.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "token validation failed")
	}
	return claims.CustomerID, nil
}
