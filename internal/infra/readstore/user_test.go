//go:build unit

package readstore

import (
	"context"
	"testing"

	"lending-core/internal/infra"
	"lending-core/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRowQueries struct {
	mock.Mock
}

func (m *MockUserRowQueries) FindRowByID(ctx context.Context, id uuid.UUID) (converter.UserRow, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(converter.UserRow), args.Error(1)
}

func (m *MockUserRowQueries) FindRowByEmail(ctx context.Context, email string) (converter.UserRow, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(converter.UserRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	row := converter.UserRow{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         "member",
		IsActive:     true,
	}

	tests := []struct {
		name      string
		input     string
		lookup    string
		mockRow   converter.UserRow
		mockError error
		wantHash  string
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:     "normalises before lookup",
			input:    "  Alice@Example.COM ",
			lookup:   "alice@example.com",
			mockRow:  row,
			wantHash: row.PasswordHash,
		},
		{
			name:      "user not found",
			input:     "nobody@example.com",
			lookup:    "nobody@example.com",
			mockError: infra.NewRepoErr(infra.KindNotFound, "user not found", nil),
			wantKind:  infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserRowQueries)
			q.On("FindRowByEmail", mock.Anything, tt.lookup).Return(tt.mockRow, tt.mockError)

			view, hash, err := NewUserReadStore(q).FindByEmail(context.Background(), tt.input)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockRow.ID, view.ID)
				assert.Equal(t, "member", view.Role)
				assert.Equal(t, tt.wantHash, hash)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	id := uuid.New()
	q := new(MockUserRowQueries)
	q.On("FindRowByID", mock.Anything, id).Return(converter.UserRow{ID: id, Name: "Lena", Role: "librarian"}, nil)

	view, err := NewUserReadStore(q).FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Lena", view.Name)
	assert.Equal(t, "librarian", view.Role)
}
