//go:build unit || integration

package builder

import (
	"time"

	"lending-core/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	id     uuid.UUID
	itemID uuid.UUID
	userID uuid.UUID
	start  time.Time
	end    time.Time
	status reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		id:     uuid.New(),
		itemID: uuid.New(),
		userID: uuid.New(),
		start:  Day(1),
		end:    Day(5),
		status: reservation.StatusConfirmed,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *ReservationBuilder) WithItem(id uuid.UUID) *ReservationBuilder {
	b.itemID = id
	return b
}

func (b *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	b.userID = id
	return b
}

func (b *ReservationBuilder) WithPeriod(from, to time.Time) *ReservationBuilder {
	b.start, b.end = from, to
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.status = s
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	return reservation.ReconstructReservation(b.id, b.itemID, b.userID, b.start, b.end, b.status, Base, Base)
}
