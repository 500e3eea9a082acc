package queries

import (
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
)

func NewItemView(it *item.Item) ItemView {
	return ItemView{
		ID:        it.ID(),
		Name:      it.Name(),
		Category:  it.Category().String(),
		Status:    it.Status().String(),
		CreatedAt: it.CreatedAt(),
		UpdatedAt: it.UpdatedAt(),
	}
}

func NewLoanView(l *loan.Loan, now time.Time) LoanView {
	return LoanView{
		ID:              l.ID(),
		ItemID:          l.ItemID(),
		BorrowerID:      l.BorrowerID(),
		BorrowedAt:      l.BorrowedAt(),
		DueAt:           l.DueAt(),
		ReturnedAt:      l.ReturnedAt(),
		Status:          l.Status().String(),
		EffectiveStatus: l.EffectiveStatus(now).String(),
		Notes:           l.Notes(),
		Tags:            l.Tags(),
	}
}

func NewReservationView(r *reservation.Reservation) ReservationView {
	return ReservationView{
		ID:        r.ID(),
		ItemID:    r.ItemID(),
		UserID:    r.UserID(),
		StartDate: r.StartDate(),
		EndDate:   r.EndDate(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func NewConflictViews(holdings []availability.Holding) []ConflictView {
	views := make([]ConflictView, 0, len(holdings))
	for _, h := range holdings {
		views = append(views, ConflictView{
			Kind:       string(h.Kind),
			ID:         h.ID,
			HolderID:   h.HolderID,
			HolderName: h.HolderName,
			Start:      h.Period.Start(),
			End:        h.Period.End(),
		})
	}
	return views
}
