package converter

import (
	"time"

	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type UserRow struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func UserToRecord(u *user.User) goqu.Record {
	return goqu.Record{
		"id":            u.ID(),
		"name":          u.Name(),
		"email":         u.Email().Value(),
		"password_hash": u.PasswordHash(),
		"role":          u.Role().String(),
		"is_active":     u.IsActive(),
		"created_at":    u.CreatedAt(),
		"updated_at":    u.UpdatedAt(),
	}
}

func UserRole(row UserRow) (user.Role, error) {
	role, err := user.NewRole(row.Role)
	if err != nil {
		return "", errs.Wrapf(err, "user %s", row.ID)
	}
	return role, nil
}
