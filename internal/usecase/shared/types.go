package shared

import (
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshot of the identity collaborator's record
type UserSnapshot struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     user.Role
	IsActive bool
}

// Zero-valued fields do not filter.
type LoanFilter struct {
	ItemID      *uuid.UUID
	BorrowerID  *uuid.UUID
	Statuses    []loan.Status
	OpenOnly    bool
	Overlapping *availability.Period
}

type ReservationFilter struct {
	ItemID       *uuid.UUID
	UserID       *uuid.UUID
	Statuses     []reservation.Status
	Overlapping  *availability.Period
	ExcludeID    *uuid.UUID
	EndingBefore *time.Time
	EndingFrom   *time.Time
}

// Matches applies the filter in memory. SQL implementations must agree with it.
func (f LoanFilter) Matches(l *loan.Loan) bool {
	if f.ItemID != nil && l.ItemID() != *f.ItemID {
		return false
	}
	if f.BorrowerID != nil && l.BorrowerID() != *f.BorrowerID {
		return false
	}
	if len(f.Statuses) > 0 && !containsLoanStatus(f.Statuses, l.Status()) {
		return false
	}
	if f.OpenOnly && l.ReturnedAt() != nil {
		return false
	}
	if f.Overlapping != nil && !availability.Overlaps(*f.Overlapping, l.Period()) {
		return false
	}
	return true
}

func (f ReservationFilter) Matches(r *reservation.Reservation) bool {
	if f.ItemID != nil && r.ItemID() != *f.ItemID {
		return false
	}
	if f.UserID != nil && r.UserID() != *f.UserID {
		return false
	}
	if len(f.Statuses) > 0 && !containsReservationStatus(f.Statuses, r.Status()) {
		return false
	}
	if f.ExcludeID != nil && r.ID() == *f.ExcludeID {
		return false
	}
	if f.EndingBefore != nil && !r.EndDate().Before(*f.EndingBefore) {
		return false
	}
	if f.EndingFrom != nil && r.EndDate().Before(*f.EndingFrom) {
		return false
	}
	if f.Overlapping != nil && !availability.Overlaps(*f.Overlapping, r.Period()) {
		return false
	}
	return true
}

func containsLoanStatus(list []loan.Status, s loan.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsReservationStatus(list []reservation.Status, s reservation.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
