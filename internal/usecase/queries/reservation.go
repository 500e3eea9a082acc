package queries

import (
	"context"
	"time"

	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationAccess = errs.NewKind(errs.ErrUnauthorized, "reservation access denied")

type ReservationReadStore interface {
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, actor user.Actor, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// ListByUser: members see their own reservations, staff see anyone's.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, actor user.Actor, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if !actor.IsStaff() && actor.ID != userID {
		return nil, nil, ErrReservationAccess
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	page, next := keysetPage(rows, limit, func(v *ReservationListItem) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return page, next, nil
}
