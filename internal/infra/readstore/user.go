package readstore

import (
	"context"
	"strings"

	"lending-core/internal/infra/repository/converter"
	"lending-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRowQueries interface {
	FindRowByID(ctx context.Context, id uuid.UUID) (converter.UserRow, error)
	FindRowByEmail(ctx context.Context, email string) (converter.UserRow, error)
}

type UserReadStore struct {
	queries UserRowQueries
}

func NewUserReadStore(queries UserRowQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail matches case-insensitively; emails are stored lower-cased.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindRowByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row converter.UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
