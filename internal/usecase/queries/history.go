package queries

import (
	"context"
	"time"

	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHistoryAccess = errs.NewKind(errs.ErrUnauthorized, "history is visible to staff only")

// HistoryReadStore pages the merged history of an item, newest first.
type HistoryReadStore interface {
	FindByItemFirstPage(ctx context.Context, itemID uuid.UUID, limit int32) ([]*HistoryEntryView, error)
	FindByItemKeyset(ctx context.Context, itemID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*HistoryEntryView, error)
}

type HistoryQueries interface {
	ListByItem(ctx context.Context, itemID uuid.UUID, actor user.Actor, cursor *Cursor, limit int) ([]*HistoryEntryView, *Cursor, error)
}

type historyQueriesImpl struct {
	store HistoryReadStore
}

func NewHistoryQueries(store HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{store: store}
}

func (q *historyQueriesImpl) ListByItem(ctx context.Context, itemID uuid.UUID, actor user.Actor, cursor *Cursor, limit int) ([]*HistoryEntryView, *Cursor, error) {
	if !actor.IsStaff() {
		return nil, nil, ErrHistoryAccess
	}

	limit = ValidateLimit(limit)
	var rows []*HistoryEntryView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByItemFirstPage(ctx, itemID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindByItemKeyset(ctx, itemID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	page, next := keysetPage(rows, limit, func(v *HistoryEntryView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return page, next, nil
}
