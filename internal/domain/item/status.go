package item

import (
	"time"

	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"

	"github.com/google/uuid"
)

// DeriveStatus computes an item's display status from its holdings. The
// first matching rule wins:
//
//	out-of-order flag             -> OUT_OF_ORDER
//	open ACTIVE or OVERDUE loan   -> BORROWED
//	open SCHEDULED loan           -> BORROWED
//	confirmed, not yet ended      -> PENDING
//	otherwise                     -> AVAILABLE
//
// It is pure: the same inputs always produce the same status.
func DeriveStatus(outOfOrder bool, loans []*loan.Loan, reservations []*reservation.Reservation, now time.Time) Status {
	if outOfOrder {
		return StatusOutOfOrder
	}
	if HasLiveLoan(loans, now) {
		return StatusBorrowed
	}
	for _, l := range loans {
		if l.IsOpen() && l.EffectiveStatus(now) == loan.StatusScheduled {
			return StatusBorrowed
		}
	}
	for _, r := range reservations {
		if r.IsLive(now) {
			return StatusPending
		}
	}
	return StatusAvailable
}

// HasLiveLoan reports whether any unreturned loan is effectively ACTIVE or OVERDUE.
func HasLiveLoan(loans []*loan.Loan, now time.Time) bool {
	for _, l := range loans {
		if l.IsLive(now) {
			return true
		}
	}
	return false
}

type Correction struct {
	ItemID uuid.UUID
	From   Status
	To     Status
}

// PlanCorrection decides what the reconciliation sweep should do with one
// item. Three drifts are repaired: BORROWED without a live loan, AVAILABLE
// with one, and PENDING whose derived status moved on. Applying a correction
// and planning again yields nothing.
func PlanCorrection(it *Item, loans []*loan.Loan, reservations []*reservation.Reservation, now time.Time) (Correction, bool) {
	live := HasLiveLoan(loans, now)

	var to Status
	switch {
	case it.Status() == StatusBorrowed && !live:
		to = DeriveStatus(false, loans, reservations, now)
	case it.Status() == StatusAvailable && live:
		to = StatusBorrowed
	case it.Status() == StatusPending:
		to = DeriveStatus(false, loans, reservations, now)
	default:
		return Correction{}, false
	}

	if to == it.Status() {
		return Correction{}, false
	}
	return Correction{ItemID: it.ID(), From: it.Status(), To: to}, true
}
