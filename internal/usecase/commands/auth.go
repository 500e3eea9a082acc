package commands

import (
	"context"
	"log/slog"

	"lending-core/internal/domain/auth"
	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/pkg/jwt"
	"lending-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = auth.ErrInvalidCredentials
	ErrTokenValidation    = errs.NewKind(errs.ErrUnauthorized, "token validation failed")
	ErrAccountInactive    = errs.NewKind(errs.ErrUnauthorized, "user inactive")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, password)
	if err != nil {
		// Malformed input gets the same answer as a wrong password.
		return nil, ErrInvalidCredentials
	}

	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}
	if err := credentials.Verify(hash); err != nil {
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrAccountInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role")
	}

	pair, err := a.issue(view.ID, role)
	if err != nil {
		return nil, err
	}

	slog.Info("user logged in", "user_id", view.ID, "role", role.String())
	return &LoginResult{UserID: view.ID, Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Role comes from the store so a demotion takes effect on refresh.
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrTokenValidation
	}
	if !view.IsActive {
		return nil, ErrAccountInactive
	}
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role")
	}

	return a.issue(view.ID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
