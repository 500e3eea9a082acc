package shared

import (
	"context"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one transaction per mutation, retried on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: reads outside any transaction, used for fast rejection
	CommandReads() CommandReads
}

type Tx interface {
	Items() ItemRepository
	Loans() LoanRepository
	Reservations() ReservationRepository
	History() HistoryRepository
	Reads() CommandReads
}

type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	LoanByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	Loans(ctx context.Context, f LoanFilter) ([]*loan.Loan, error)
	Reservations(ctx context.Context, f ReservationFilter) ([]*reservation.Reservation, error)
	// Holdings resolve the holder's display name alongside the period.
	LoanHoldings(ctx context.Context, f LoanFilter) ([]availability.Holding, error)
	ReservationHoldings(ctx context.Context, f ReservationFilter) ([]availability.Holding, error)
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) error
	// LockByID takes the per-item row lock for the rest of the transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status item.Status, now time.Time) error
	ListByStatus(ctx context.Context, statuses ...item.Status) ([]*item.Item, error)
}

type LoanRepository interface {
	Create(ctx context.Context, l *loan.Loan) error
	Update(ctx context.Context, l *loan.Loan) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
}

type HistoryRepository interface {
	AppendLoan(ctx context.Context, e history.LoanEntry) error
	AppendReservation(ctx context.Context, e history.ReservationEntry) error
	AppendUserAction(ctx context.Context, e history.UserActionEntry) error
}
