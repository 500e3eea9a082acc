package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"lending-core/internal/infra"
	"lending-core/internal/infra/repository"
	"lending-core/internal/pkg/pgconv"
	"lending-core/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type historyRow struct {
	Source    string      `db:"source"`
	ID        uuid.UUID   `db:"id"`
	SubjectID pgtype.UUID `db:"subject_id"`
	ItemID    pgtype.UUID `db:"item_id"`
	ActorID   pgtype.UUID `db:"actor_id"`
	Action    string      `db:"action"`
	Comment   string      `db:"comment"`
	Details   []byte      `db:"details"`
	CreatedAt time.Time   `db:"created_at"`
}

// HistoryReadStore merges the loan, reservation and user-action history of
// one item into a single newest-first stream.
type HistoryReadStore struct {
	db     repository.DBTX
	logger *slog.Logger
}

func NewHistoryReadStore(db repository.DBTX, logger *slog.Logger) *HistoryReadStore {
	return &HistoryReadStore{db: db, logger: logger}
}

func (r *HistoryReadStore) FindByItemFirstPage(ctx context.Context, itemID uuid.UUID, limit int32) ([]*queries.HistoryEntryView, error) {
	return r.list(ctx, itemHistory(itemID, limit))
}

func (r *HistoryReadStore) FindByItemKeyset(ctx context.Context, itemID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.HistoryEntryView, error) {
	ds := itemHistory(itemID, limit).
		Where(goqu.L(`("h"."created_at", "h"."id") < (?, ?)`, lastCreatedAt, lastID))
	return r.list(ctx, ds)
}

func (r *HistoryReadStore) list(ctx context.Context, ds *goqu.SelectDataset) ([]*queries.HistoryEntryView, error) {
	rows, err := repository.CollectAll[historyRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list item history", err)
	}

	result := make([]*queries.HistoryEntryView, len(rows))
	for i, row := range rows {
		view := &queries.HistoryEntryView{
			Source:    row.Source,
			ID:        row.ID,
			SubjectID: pgconv.UUIDPtrFromPgtype(row.SubjectID),
			ItemID:    pgconv.UUIDPtrFromPgtype(row.ItemID),
			ActorID:   pgconv.UUIDPtrFromPgtype(row.ActorID),
			Action:    row.Action,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt.UTC(),
		}
		if len(row.Details) > 0 && string(row.Details) != "{}" {
			view.Details = json.RawMessage(row.Details)
		}
		result[i] = view
	}
	return result, nil
}

func itemHistory(itemID uuid.UUID, limit int32) *goqu.SelectDataset {
	loans := goqu.From("loan_history").Select(
		goqu.L("'loan'::text").As("source"), goqu.C("id"), goqu.C("loan_id").As("subject_id"),
		goqu.C("item_id"), goqu.C("actor_id"), goqu.C("action"), goqu.C("comment"),
		goqu.L("'{}'::jsonb").As("details"), goqu.C("created_at"),
	).Where(goqu.C("item_id").Eq(itemID))

	reservations := goqu.From("reservation_history").Select(
		goqu.L("'reservation'::text"), goqu.C("id"), goqu.C("reservation_id"),
		goqu.C("item_id"), goqu.C("actor_id"), goqu.C("action"), goqu.C("comment"),
		goqu.C("details"), goqu.C("created_at"),
	).Where(goqu.C("item_id").Eq(itemID))

	actions := goqu.From("user_action_history").Select(
		goqu.L("'user_action'::text"), goqu.C("id"), goqu.L("NULL::uuid"),
		goqu.C("item_id"), goqu.C("actor_id"), goqu.C("action"), goqu.C("comment"),
		goqu.C("details"), goqu.C("created_at"),
	).Where(goqu.C("item_id").Eq(itemID))

	return repository.SelectFrom(loans.UnionAll(reservations).UnionAll(actions).As("h")).
		Order(goqu.I("h.created_at").Desc(), goqu.I("h.id").Desc()).
		Limit(uint(max(limit, 0)))
}
