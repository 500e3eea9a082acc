package user

import (
	"regexp"
	"strings"

	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errs.NewKind(errs.ErrValidation, "invalid email format")
	ErrInvalidRole     = errs.NewKind(errs.ErrValidation, "invalid role")
	ErrInvalidName     = errs.NewKind(errs.ErrValidation, "user name must not be empty")
	ErrPasswordTooWeak = errs.NewKind(errs.ErrValidation, "password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Actor is whoever triggers an operation. It is always passed explicitly.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsStaff() bool {
	return a.Role.AtLeast(RoleLibrarian)
}

// IDPtr is the actor id as stored on history rows.
func (a Actor) IDPtr() *uuid.UUID {
	if a.ID == uuid.Nil {
		return nil
	}
	id := a.ID
	return &id
}
