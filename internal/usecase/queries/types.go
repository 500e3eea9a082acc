package queries

//go:generate mockgen -destination=../../testutil/mock/queries/mock_queries.go -package=queries_mock lending-core/internal/usecase/queries AvailabilityQueries,HistoryQueries,ReservationQueries,UserQueries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ItemView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoanView carries both the stored status and the one derived from dates.
type LoanView struct {
	ID              uuid.UUID  `json:"id"`
	ItemID          uuid.UUID  `json:"item_id"`
	BorrowerID      uuid.UUID  `json:"borrower_id"`
	BorrowedAt      time.Time  `json:"borrowed_at"`
	DueAt           time.Time  `json:"due_at"`
	ReturnedAt      *time.Time `json:"returned_at,omitempty"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effective_status"`
	Notes           string     `json:"notes,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	ItemName  string    `json:"item_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemAvailabilityView compares the stored item status with the derived one.
type ItemAvailabilityView struct {
	Item          ItemView          `json:"item"`
	DerivedStatus string            `json:"derived_status"`
	Consistent    bool              `json:"consistent"`
	Loans         []LoanView        `json:"loans"`
	Reservations  []ReservationView `json:"reservations"`
}

type ConflictView struct {
	Kind       string    `json:"kind"`
	ID         uuid.UUID `json:"id"`
	HolderID   uuid.UUID `json:"holder_id"`
	HolderName string    `json:"holder_name"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

type ConflictCheckView struct {
	Available bool           `json:"available"`
	Conflicts []ConflictView `json:"conflicts"`
}

// HistoryEntryView flattens the three history tables. Source is one of
// "loan", "reservation" or "user_action".
type HistoryEntryView struct {
	Source    string          `json:"source"`
	ID        uuid.UUID       `json:"id"`
	SubjectID *uuid.UUID      `json:"subject_id,omitempty"`
	ItemID    *uuid.UUID      `json:"item_id,omitempty"`
	ActorID   *uuid.UUID      `json:"actor_id,omitempty"`
	Action    string          `json:"action"`
	Comment   string          `json:"comment,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

const (
	HistorySourceLoan        = "loan"
	HistorySourceReservation = "reservation"
	HistorySourceUserAction  = "user_action"
)

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
