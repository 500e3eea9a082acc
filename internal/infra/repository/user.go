package repository

import (
	"context"
	"log/slog"

	"lending-core/internal/domain/user"
	"lending-core/internal/infra"
	"lending-core/internal/infra/repository/converter"
	"lending-core/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// UserRepository covers what the lending core needs from the identity
// tables: snapshots for checks and seeding the first administrator.
type UserRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewUserRepository(db DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := execute(ctx, r.db, insertInto(tableUsers).Rows(converter.UserToRecord(u))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindRowByEmail(ctx context.Context, email string) (converter.UserRow, error) {
	ds := SelectFrom(tableUsers).Select(userColumns...).Where(goqu.C("email").Eq(email))
	row, err := CollectOne[converter.UserRow](ctx, r.db, ds)
	if err != nil {
		return converter.UserRow{}, infra.ClassifyPgErr(r.logger, "failed to find user by email", err)
	}
	return row, nil
}

func (r *UserRepository) FindRowByID(ctx context.Context, id uuid.UUID) (converter.UserRow, error) {
	ds := SelectFrom(tableUsers).Select(userColumns...).Where(goqu.C("id").Eq(id))
	row, err := CollectOne[converter.UserRow](ctx, r.db, ds)
	if err != nil {
		return converter.UserRow{}, infra.ClassifyPgErr(r.logger, "failed to find user by ID", err)
	}
	return row, nil
}

func (r *UserRepository) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.FindRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role, err := converter.UserRole(row)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Role:     role,
		IsActive: row.IsActive,
	}, nil
}
