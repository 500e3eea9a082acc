package converter

import (
	"time"

	"lending-core/internal/domain/reservation"
	"lending-core/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type ReservationRow struct {
	ID        uuid.UUID `db:"id"`
	ItemID    uuid.UUID `db:"item_id"`
	UserID    uuid.UUID `db:"user_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ReservationHoldingRow struct {
	ReservationRow
	HolderName string `db:"holder_name"`
}

func ReservationToRecord(r *reservation.Reservation) goqu.Record {
	return goqu.Record{
		"id":         r.ID(),
		"item_id":    r.ItemID(),
		"user_id":    r.UserID(),
		"start_date": r.StartDate(),
		"end_date":   r.EndDate(),
		"status":     r.Status().String(),
		"created_at": r.CreatedAt(),
		"updated_at": r.UpdatedAt(),
	}
}

// ReservationUpdateRecord holds the columns a reschedule, cancel or expiry may change.
func ReservationUpdateRecord(r *reservation.Reservation) goqu.Record {
	return goqu.Record{
		"start_date": r.StartDate(),
		"end_date":   r.EndDate(),
		"status":     r.Status().String(),
		"updated_at": r.UpdatedAt(),
	}
}

func ReservationFromRow(row ReservationRow) (*reservation.Reservation, error) {
	status, ok := reservation.ParseStatus(row.Status)
	if !ok {
		return nil, errs.Newf("unknown reservation status %q", row.Status)
	}
	return reservation.ReconstructReservation(
		row.ID, row.ItemID, row.UserID,
		row.StartDate.UTC(), row.EndDate.UTC(),
		status,
		row.CreatedAt.UTC(), row.UpdatedAt.UTC(),
	), nil
}
