package readstore

import (
	"context"
	"log/slog"
	"time"

	"lending-core/internal/infra"
	"lending-core/internal/infra/repository"
	"lending-core/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type reservationListRow struct {
	ID        uuid.UUID `db:"id"`
	ItemID    uuid.UUID `db:"item_id"`
	ItemName  string    `db:"item_name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type ReservationReadStore struct {
	db     repository.DBTX
	logger *slog.Logger
}

func NewReservationReadStore(db repository.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{db: db, logger: logger}
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, reservationsByUser(userID, limit))
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	ds := reservationsByUser(userID, limit).
		Where(goqu.L(`("r"."created_at", "r"."id") < (?, ?)`, lastCreatedAt, lastID))
	return r.list(ctx, ds)
}

func (r *ReservationReadStore) list(ctx context.Context, ds *goqu.SelectDataset) ([]*queries.ReservationListItem, error) {
	rows, err := repository.CollectAll[reservationListRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list reservations", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:        row.ID,
			ItemID:    row.ItemID,
			ItemName:  row.ItemName,
			StartDate: row.StartDate.UTC(),
			EndDate:   row.EndDate.UTC(),
			Status:    row.Status,
			CreatedAt: row.CreatedAt.UTC(),
		}
	}
	return result, nil
}

// reservationsByUser orders newest first; callers fetch limit+1 rows to detect a next page.
func reservationsByUser(userID uuid.UUID, limit int32) *goqu.SelectDataset {
	return repository.SelectFrom(goqu.T("reservations").As("r")).
		Select(
			goqu.I("r.id"), goqu.I("r.item_id"), goqu.I("i.name").As("item_name"),
			goqu.I("r.start_date"), goqu.I("r.end_date"), goqu.I("r.status"), goqu.I("r.created_at"),
		).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("r.item_id")))).
		Where(goqu.I("r.user_id").Eq(userID)).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()).
		Limit(uint(max(limit, 0)))
}
