package converter

import (
	"lending-core/internal/domain/history"
	"lending-core/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
)

func LoanEntryToRecord(e history.LoanEntry) goqu.Record {
	return goqu.Record{
		"id":         e.ID,
		"loan_id":    e.LoanID,
		"item_id":    e.ItemID,
		"actor_id":   pgconv.UUIDPtrToPgtype(e.ActorID),
		"action":     string(e.Action),
		"comment":    e.Comment,
		"created_at": e.CreatedAt,
	}
}

func ReservationEntryToRecord(e history.ReservationEntry) goqu.Record {
	return goqu.Record{
		"id":             e.ID,
		"reservation_id": e.ReservationID,
		"item_id":        e.ItemID,
		"actor_id":       pgconv.UUIDPtrToPgtype(e.ActorID),
		"action":         string(e.Action),
		"comment":        e.Comment,
		"details":        detailsJSON(e.Details),
		"created_at":     e.CreatedAt,
	}
}

func UserActionEntryToRecord(e history.UserActionEntry) goqu.Record {
	return goqu.Record{
		"id":         e.ID,
		"actor_id":   pgconv.UUIDPtrToPgtype(e.ActorID),
		"item_id":    pgconv.UUIDPtrToPgtype(e.ItemID),
		"action":     string(e.Action),
		"comment":    e.Comment,
		"details":    detailsJSON(e.Details),
		"created_at": e.CreatedAt,
	}
}

// Empty payloads are stored as {}.
func detailsJSON(raw []byte) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
