package converter

import (
	"time"

	"lending-core/internal/domain/item"
	"lending-core/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type ItemRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func ItemToRecord(it *item.Item) goqu.Record {
	return goqu.Record{
		"id":         it.ID(),
		"name":       it.Name(),
		"category":   it.Category().String(),
		"status":     it.Status().String(),
		"created_at": it.CreatedAt(),
		"updated_at": it.UpdatedAt(),
	}
}

func ItemFromRow(row ItemRow) (*item.Item, error) {
	category, ok := item.ParseCategory(row.Category)
	if !ok {
		return nil, errs.Newf("unknown item category %q", row.Category)
	}
	status, ok := item.ParseStatus(row.Status)
	if !ok {
		return nil, errs.Newf("unknown item status %q", row.Status)
	}
	return item.ReconstructItem(row.ID, row.Name, category, status, row.CreatedAt.UTC(), row.UpdatedAt.UTC()), nil
}
