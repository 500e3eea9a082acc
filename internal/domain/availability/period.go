package availability

import (
	"time"

	"lending-core/internal/pkg/errs"
)

var (
	ErrMissingDate   = errs.NewKind(errs.ErrValidation, "start and end dates are required")
	ErrInvalidPeriod = errs.NewKind(errs.ErrValidation, "end date must be after start date")
)

// Period is a half-open interval [start, end). Loans and reservations both
// use it, so a holding ending at T never collides with one starting at T.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrMissingDate
	}
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rebuilds a stored period without validation.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

func (p Period) IsValid() bool {
	return !p.start.IsZero() && !p.end.IsZero() && p.end.After(p.start)
}

func (p Period) Overlaps(other Period) bool {
	return Overlaps(p, other)
}

// Overlaps is symmetric. Degenerate or unset periods never overlap anything.
func Overlaps(a, b Period) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	return a.start.Before(b.end) && b.start.Before(a.end)
}
