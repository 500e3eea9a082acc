package auth

import (
	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/pkg/password"
)

var ErrInvalidCredentials = errs.NewKind(errs.ErrUnauthorized, "invalid email or password")

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	pw, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: pw,
	}, nil
}

// Verify checks the password against a stored bcrypt hash. Every failure
// collapses into ErrInvalidCredentials so callers cannot enumerate users.
func (c Credentials) Verify(passwordHash string) error {
	if err := password.ComparePassword(passwordHash, c.password.Value()); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (c Credentials) Email() user.Email {
	return c.email
}
