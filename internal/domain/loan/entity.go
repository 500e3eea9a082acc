package loan

import (
	"strings"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingItem     = errs.NewKind(errs.ErrValidation, "loan requires an item")
	ErrMissingBorrower = errs.NewKind(errs.ErrValidation, "loan requires a borrower")
	ErrDueInPast       = errs.NewKind(errs.ErrValidation, "due date must be in the future")
	ErrAlreadyReturned = errs.NewKind(errs.ErrValidation, "loan is already returned")
	ErrNotOpen         = errs.NewKind(errs.ErrValidation, "loan is no longer open")
	ErrNotesTooLong    = errs.NewKind(errs.ErrValidation, "notes must be at most 1000 characters")
	ErrTooManyTags     = errs.NewKind(errs.ErrValidation, "a loan carries at most 20 tags")
)

const (
	maxNotesLength = 1000
	maxTags        = 20
)

type Loan struct {
	id         uuid.UUID
	itemID     uuid.UUID
	borrowerID uuid.UUID
	period     availability.Period
	returnedAt *time.Time
	status     Status
	notes      string
	tags       []string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewLoan opens a loan. A loan starting in the future is SCHEDULED.
func NewLoan(itemID, borrowerID uuid.UUID, period availability.Period, notes string, tags []string, now time.Time) (*Loan, error) {
	if itemID == uuid.Nil {
		return nil, ErrMissingItem
	}
	if borrowerID == uuid.Nil {
		return nil, ErrMissingBorrower
	}
	if !period.IsValid() {
		return nil, availability.ErrInvalidPeriod
	}
	if !period.End().After(now) {
		return nil, ErrDueInPast
	}
	notes = strings.TrimSpace(notes)
	if len([]rune(notes)) > maxNotesLength {
		return nil, ErrNotesTooLong
	}
	cleaned := normalizeTags(tags)
	if len(cleaned) > maxTags {
		return nil, ErrTooManyTags
	}

	status := StatusActive
	if period.Start().After(now) {
		status = StatusScheduled
	}

	return &Loan{
		id:         uuid.New(),
		itemID:     itemID,
		borrowerID: borrowerID,
		period:     period,
		status:     status,
		notes:      notes,
		tags:       cleaned,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructLoan(
	id, itemID, borrowerID uuid.UUID,
	borrowedAt, dueAt time.Time,
	returnedAt *time.Time,
	status Status,
	notes string,
	tags []string,
	createdAt, updatedAt time.Time,
) *Loan {
	return &Loan{
		id:         id,
		itemID:     itemID,
		borrowerID: borrowerID,
		period:     availability.ReconstructPeriod(borrowedAt, dueAt),
		returnedAt: returnedAt,
		status:     status,
		notes:      notes,
		tags:       tags,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// IsOpen reports whether the loan still occupies its item.
func (l *Loan) IsOpen() bool {
	return l.returnedAt == nil && l.status.IsOpen()
}

// EffectiveStatus derives the status from dates rather than trusting the
// stored value, which is only refreshed by the sweeper.
func (l *Loan) EffectiveStatus(now time.Time) Status {
	switch {
	case l.returnedAt != nil || l.status == StatusReturned:
		return StatusReturned
	case l.status == StatusOutOfOrder:
		return StatusOutOfOrder
	case l.period.Start().After(now):
		return StatusScheduled
	case l.period.End().Before(now):
		return StatusOverdue
	default:
		return StatusActive
	}
}

// IsLive reports an open loan whose item is physically out right now.
func (l *Loan) IsLive(now time.Time) bool {
	if !l.IsOpen() {
		return false
	}
	st := l.EffectiveStatus(now)
	return st == StatusActive || st == StatusOverdue
}

func (l *Loan) Return(now time.Time) error {
	if l.returnedAt != nil || l.status == StatusReturned {
		return ErrAlreadyReturned
	}
	if !l.IsOpen() {
		return ErrNotOpen
	}
	returned := now
	l.returnedAt = &returned
	l.status = StatusReturned
	l.updatedAt = now
	return nil
}

// MarkLost closes the loan without a return; the item goes out of order.
func (l *Loan) MarkLost(now time.Time) error {
	if !l.IsOpen() {
		return ErrNotOpen
	}
	l.status = StatusOutOfOrder
	l.updatedAt = now
	return nil
}

// RefreshStatus stores the effective status. It reports whether anything changed.
func (l *Loan) RefreshStatus(now time.Time) bool {
	if !l.IsOpen() {
		return false
	}
	eff := l.EffectiveStatus(now)
	if eff == l.status {
		return false
	}
	l.status = eff
	l.updatedAt = now
	return true
}

func (l *Loan) Holding(holderName string) availability.Holding {
	return availability.Holding{
		Kind:       availability.HoldingLoan,
		ID:         l.id,
		ItemID:     l.itemID,
		HolderID:   l.borrowerID,
		HolderName: holderName,
		Period:     l.period,
	}
}

func (l *Loan) ID() uuid.UUID               { return l.id }
func (l *Loan) ItemID() uuid.UUID           { return l.itemID }
func (l *Loan) BorrowerID() uuid.UUID       { return l.borrowerID }
func (l *Loan) Period() availability.Period { return l.period }
func (l *Loan) BorrowedAt() time.Time       { return l.period.Start() }
func (l *Loan) DueAt() time.Time            { return l.period.End() }
func (l *Loan) ReturnedAt() *time.Time      { return l.returnedAt }
func (l *Loan) Status() Status              { return l.status }
func (l *Loan) Notes() string               { return l.notes }
func (l *Loan) Tags() []string              { return append([]string(nil), l.tags...) }
func (l *Loan) CreatedAt() time.Time        { return l.createdAt }
func (l *Loan) UpdatedAt() time.Time        { return l.updatedAt }

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
