package repository

import (
	"context"
	"log/slog"

	"lending-core/internal/domain/reservation"
	"lending-core/internal/infra"
	"lending-core/internal/infra/repository/converter"

	"github.com/doug-martin/goqu/v9"
)

// ReservationRepository relies on reservations_no_overlap, which only covers
// CONFIRMED rows.
type ReservationRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewReservationRepository(db DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, logger: logger}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if _, err := execute(ctx, r.db, insertInto(tableReservations).Rows(converter.ReservationToRecord(res))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := execute(ctx, r.db, update(tableReservations).
		Set(converter.ReservationUpdateRecord(res)).
		Where(goqu.C("id").Eq(res.ID())))
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}
