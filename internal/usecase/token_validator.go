package usecase

import (
	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the actor the lending commands
// authorize against.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// ValidateToken rejects refresh tokens and unknown roles.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return user.Actor{}, jwt.ErrInvalidToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, err
	}
	return user.Actor{ID: claims.UserID, Role: role}, nil
}
