//go:build unit || integration

package builder

import (
	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/password"

	"github.com/google/uuid"
)

const DefaultPassword = "password123"

type UserBuilder struct {
	id       uuid.UUID
	name     string
	email    string
	password string
	role     user.Role
	isActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:       uuid.New(),
		name:     "Test User",
		email:    "test@example.com",
		password: DefaultPassword,
		role:     user.RoleMember,
		isActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.id = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithRole(role user.Role) *UserBuilder {
	b.role = role
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.isActive = false
	return b
}

// BuildDomain validates like production code would.
func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.email)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(b.password)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(b.name, email, hash, b.role, Base)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(b.id, u.Name(), u.Email(), u.PasswordHash(), u.Role(), b.isActive, Base, Base), nil
}

// Build panics on invalid input; use it for fixtures known to be valid.
func (b *UserBuilder) Build() *user.User {
	u, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return u
}
