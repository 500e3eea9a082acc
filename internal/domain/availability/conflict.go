package availability

import (
	"fmt"
	"sort"
	"strings"

	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type HoldingKind string

const (
	HoldingLoan        HoldingKind = "LOAN"
	HoldingReservation HoldingKind = "RESERVATION"
)

// Holding is a loan or reservation that occupies an item for a period.
type Holding struct {
	Kind       HoldingKind
	ID         uuid.UUID
	ItemID     uuid.UUID
	HolderID   uuid.UUID
	HolderName string
	Period     Period
}

// FindConflicts returns the holdings overlapping candidate, ordered by start.
func FindConflicts(candidate Period, holdings []Holding) []Holding {
	var out []Holding
	for _, h := range holdings {
		if Overlaps(candidate, h.Period) {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Period.Start().Before(out[j].Period.Start())
	})
	return out
}

// ConflictError carries the holdings that blocked a loan or reservation.
type ConflictError struct {
	Conflicts []Holding
}

func NewConflictError(conflicts []Holding) error {
	return &ConflictError{Conflicts: conflicts}
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "period overlaps an existing holding"
	}
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s %s held by %s", strings.ToLower(string(c.Kind)), c.ID, c.HolderName))
	}
	return "period overlaps " + strings.Join(parts, ", ")
}

func (e *ConflictError) Unwrap() error { return errs.ErrConflict }
