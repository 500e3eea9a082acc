package reservation

import (
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingItem  = errs.NewKind(errs.ErrValidation, "reservation requires an item")
	ErrMissingUser  = errs.NewKind(errs.ErrValidation, "reservation requires a user")
	ErrEndsInPast   = errs.NewKind(errs.ErrValidation, "reservation must end in the future")
	ErrNotConfirmed = errs.NewKind(errs.ErrValidation, "reservation is not confirmed")
	ErrNotExpirable = errs.NewKind(errs.ErrValidation, "reservation has not ended yet")
)

type Reservation struct {
	id        uuid.UUID
	itemID    uuid.UUID
	userID    uuid.UUID
	period    availability.Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(itemID, userID uuid.UUID, period availability.Period, now time.Time) (*Reservation, error) {
	if itemID == uuid.Nil {
		return nil, ErrMissingItem
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if !period.IsValid() {
		return nil, availability.ErrInvalidPeriod
	}
	if !period.End().After(now) {
		return nil, ErrEndsInPast
	}

	return &Reservation{
		id:        uuid.New(),
		itemID:    itemID,
		userID:    userID,
		period:    period,
		status:    StatusConfirmed,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, itemID, userID uuid.UUID,
	startDate, endDate time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		itemID:    itemID,
		userID:    userID,
		period:    availability.ReconstructPeriod(startDate, endDate),
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// IsLive reports a confirmed reservation that has not ended. The end day
// itself still counts as pending.
func (r *Reservation) IsLive(now time.Time) bool {
	return r.IsConfirmed() && !r.period.End().Before(now)
}

func (r *Reservation) HasLapsed(now time.Time) bool {
	return r.IsConfirmed() && r.period.End().Before(now)
}

func (r *Reservation) Reschedule(period availability.Period, now time.Time) error {
	if !r.IsConfirmed() {
		return ErrNotConfirmed
	}
	if !period.IsValid() {
		return availability.ErrInvalidPeriod
	}
	if !period.End().After(now) {
		return ErrEndsInPast
	}
	r.period = period
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if !r.IsConfirmed() {
		return ErrNotConfirmed
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) Expire(now time.Time) error {
	if !r.HasLapsed(now) {
		return ErrNotExpirable
	}
	r.status = StatusExpired
	r.updatedAt = now
	return nil
}

func (r *Reservation) Holding(holderName string) availability.Holding {
	return availability.Holding{
		Kind:       availability.HoldingReservation,
		ID:         r.id,
		ItemID:     r.itemID,
		HolderID:   r.userID,
		HolderName: holderName,
		Period:     r.period,
	}
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) ItemID() uuid.UUID           { return r.itemID }
func (r *Reservation) UserID() uuid.UUID           { return r.userID }
func (r *Reservation) Period() availability.Period { return r.period }
func (r *Reservation) StartDate() time.Time        { return r.period.Start() }
func (r *Reservation) EndDate() time.Time          { return r.period.End() }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
