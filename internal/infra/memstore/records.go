package memstore

import (
	"time"

	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/domain/user"

	"github.com/google/uuid"
)

// Records are stored by value so a transaction clone never shares mutable
// state with the committed copy.

type userRecord struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	role         user.Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

type itemRecord struct {
	id        uuid.UUID
	name      string
	category  item.Category
	status    item.Status
	createdAt time.Time
	updatedAt time.Time
}

type loanRecord struct {
	id         uuid.UUID
	itemID     uuid.UUID
	borrowerID uuid.UUID
	borrowedAt time.Time
	dueAt      time.Time
	returnedAt *time.Time
	status     loan.Status
	notes      string
	tags       []string
	createdAt  time.Time
	updatedAt  time.Time
}

type reservationRecord struct {
	id        uuid.UUID
	itemID    uuid.UUID
	userID    uuid.UUID
	startDate time.Time
	endDate   time.Time
	status    reservation.Status
	createdAt time.Time
	updatedAt time.Time
}

func userToRecord(u *user.User) userRecord {
	return userRecord{
		id:           u.ID(),
		name:         u.Name(),
		email:        u.Email().Value(),
		passwordHash: u.PasswordHash(),
		role:         u.Role(),
		isActive:     u.IsActive(),
		createdAt:    u.CreatedAt(),
		updatedAt:    u.UpdatedAt(),
	}
}

func itemToRecord(it *item.Item) itemRecord {
	return itemRecord{
		id:        it.ID(),
		name:      it.Name(),
		category:  it.Category(),
		status:    it.Status(),
		createdAt: it.CreatedAt(),
		updatedAt: it.UpdatedAt(),
	}
}

func (r itemRecord) toDomain() *item.Item {
	return item.ReconstructItem(r.id, r.name, r.category, r.status, r.createdAt, r.updatedAt)
}

func loanToRecord(l *loan.Loan) loanRecord {
	return loanRecord{
		id:         l.ID(),
		itemID:     l.ItemID(),
		borrowerID: l.BorrowerID(),
		borrowedAt: l.BorrowedAt(),
		dueAt:      l.DueAt(),
		returnedAt: copyTime(l.ReturnedAt()),
		status:     l.Status(),
		notes:      l.Notes(),
		tags:       l.Tags(),
		createdAt:  l.CreatedAt(),
		updatedAt:  l.UpdatedAt(),
	}
}

func (r loanRecord) toDomain() *loan.Loan {
	return loan.ReconstructLoan(
		r.id, r.itemID, r.borrowerID,
		r.borrowedAt, r.dueAt,
		copyTime(r.returnedAt),
		r.status,
		r.notes,
		append([]string(nil), r.tags...),
		r.createdAt, r.updatedAt,
	)
}

func reservationToRecord(r *reservation.Reservation) reservationRecord {
	return reservationRecord{
		id:        r.ID(),
		itemID:    r.ItemID(),
		userID:    r.UserID(),
		startDate: r.StartDate(),
		endDate:   r.EndDate(),
		status:    r.Status(),
		createdAt: r.CreatedAt(),
		updatedAt: r.UpdatedAt(),
	}
}

func (r reservationRecord) toDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(r.id, r.itemID, r.userID, r.startDate, r.endDate, r.status, r.createdAt, r.updatedAt)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
