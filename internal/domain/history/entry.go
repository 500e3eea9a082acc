package history

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

type LoanAction string

const (
	LoanCreation      LoanAction = "creation"
	LoanReturn        LoanAction = "return"
	LoanLost          LoanAction = "lost"
	LoanStatusRefresh LoanAction = "status_refresh"
)

type ReservationAction string

const (
	ReservationCreate             ReservationAction = "CREATE"
	ReservationModify             ReservationAction = "MODIFY"
	ReservationModifyFailed       ReservationAction = "MODIFY_FAILED"
	ReservationUnauthorizedModify ReservationAction = "UNAUTHORIZED_MODIFY"
	ReservationCancel             ReservationAction = "CANCEL"
	ReservationExpire             ReservationAction = "EXPIRE"
)

type UserAction string

const (
	ActionStatusReconciled  UserAction = "STATUS_RECONCILED"
	ActionItemOutOfOrder    UserAction = "ITEM_OUT_OF_ORDER"
	ActionItemBackInService UserAction = "ITEM_BACK_IN_SERVICE"
	ActionItemCreated       UserAction = "ITEM_CREATED"
)

// Entries are append-only. A nil ActorID means the system acted.

type LoanEntry struct {
	ID        uuid.UUID
	LoanID    uuid.UUID
	ItemID    uuid.UUID
	ActorID   *uuid.UUID
	Action    LoanAction
	Comment   string
	CreatedAt time.Time
}

type ReservationEntry struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ItemID        uuid.UUID
	ActorID       *uuid.UUID
	Action        ReservationAction
	Comment       string
	Details       []byte
	CreatedAt     time.Time
}

type UserActionEntry struct {
	ID        uuid.UUID
	ActorID   *uuid.UUID
	ItemID    *uuid.UUID
	Action    UserAction
	Comment   string
	Details   []byte
	CreatedAt time.Time
}

func NewLoanEntry(loanID, itemID uuid.UUID, actorID *uuid.UUID, action LoanAction, comment string, now time.Time) LoanEntry {
	return LoanEntry{
		ID:        uuid.New(),
		LoanID:    loanID,
		ItemID:    itemID,
		ActorID:   actorID,
		Action:    action,
		Comment:   comment,
		CreatedAt: now,
	}
}

func NewReservationEntry(reservationID, itemID uuid.UUID, actorID *uuid.UUID, action ReservationAction, comment string, details any, now time.Time) (ReservationEntry, error) {
	payload, err := EncodeDetails(details)
	if err != nil {
		return ReservationEntry{}, err
	}
	return ReservationEntry{
		ID:            uuid.New(),
		ReservationID: reservationID,
		ItemID:        itemID,
		ActorID:       actorID,
		Action:        action,
		Comment:       comment,
		Details:       payload,
		CreatedAt:     now,
	}, nil
}

func NewUserActionEntry(actorID, itemID *uuid.UUID, action UserAction, comment string, details any, now time.Time) (UserActionEntry, error) {
	payload, err := EncodeDetails(details)
	if err != nil {
		return UserActionEntry{}, err
	}
	return UserActionEntry{
		ID:        uuid.New(),
		ActorID:   actorID,
		ItemID:    itemID,
		Action:    action,
		Comment:   comment,
		Details:   payload,
		CreatedAt: now,
	}, nil
}

// EncodeDetails serialises a details payload. nil becomes an empty object.
func EncodeDetails(details any) ([]byte, error) {
	if details == nil {
		return []byte("{}"), nil
	}
	return jsoniter.ConfigFastest.Marshal(details)
}

func DecodeDetails(raw []byte, target any) error {
	return jsoniter.ConfigFastest.Unmarshal(raw, target)
}

// PeriodDetails is the details shape for reservation date changes.
type PeriodDetails struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ConflictDetail struct {
	Kind       string    `json:"kind"`
	ID         uuid.UUID `json:"id"`
	HolderID   uuid.UUID `json:"holderId"`
	HolderName string    `json:"holderName"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

type ModifyDetails struct {
	Previous  *PeriodDetails   `json:"previous,omitempty"`
	Requested PeriodDetails    `json:"requested"`
	Conflicts []ConflictDetail `json:"conflicts,omitempty"`
}

type StatusChangeDetails struct {
	From string `json:"from"`
	To   string `json:"to"`
}
