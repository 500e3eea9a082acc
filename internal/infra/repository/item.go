package repository

import (
	"context"
	"log/slog"
	"time"

	"lending-core/internal/domain/item"
	"lending-core/internal/infra"
	"lending-core/internal/infra/repository/converter"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

type ItemRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewItemRepository(db DBTX, logger *slog.Logger) *ItemRepository {
	return &ItemRepository{db: db, logger: logger}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	if _, err := execute(ctx, r.db, insertInto(tableItems).Rows(converter.ItemToRecord(it))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return r.findOne(ctx, itemByID(id))
}

// LockByID holds the row lock until the surrounding transaction ends.
// Every mutation touching an item's holdings takes it first.
func (r *ItemRepository) LockByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return r.findOne(ctx, itemByID(id).ForUpdate(exp.Wait))
}

func (r *ItemRepository) findOne(ctx context.Context, ds *goqu.SelectDataset) (*item.Item, error) {
	row, err := CollectOne[converter.ItemRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find item", err)
	}
	return converter.ItemFromRow(row)
}

func (r *ItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status item.Status, now time.Time) error {
	tag, err := execute(ctx, r.db, update(tableItems).
		Set(goqu.Record{"status": status.String(), "updated_at": now}).
		Where(goqu.C("id").Eq(id)))
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update item status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "item not found", nil)
	}
	return nil
}

func (r *ItemRepository) ListByStatus(ctx context.Context, statuses ...item.Status) ([]*item.Item, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s.String())
	}
	ds := SelectFrom(tableItems).Select(itemColumns...).
		Where(goqu.C("status").In(values)).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc())

	rows, err := CollectAll[converter.ItemRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list items", err)
	}
	out := make([]*item.Item, 0, len(rows))
	for _, row := range rows {
		it, err := converter.ItemFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func itemByID(id uuid.UUID) *goqu.SelectDataset {
	return SelectFrom(tableItems).Select(itemColumns...).Where(goqu.C("id").Eq(id))
}
