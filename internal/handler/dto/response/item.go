package response

import (
	"time"

	"lending-core/internal/domain/item"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ItemStatusResponse struct {
	ItemID uuid.UUID `json:"itemId"`
	From   string    `json:"from"`
	To     string    `json:"to"`
}

type AvailabilityResponse struct {
	Item          ItemResponse          `json:"item"`
	DerivedStatus string                `json:"derivedStatus"`
	Consistent    bool                  `json:"consistent"`
	Loans         []LoanResponse        `json:"loans"`
	Reservations  []ReservationResponse `json:"reservations"`
}

type ConflictResponse struct {
	Kind       string    `json:"kind"`
	ID         uuid.UUID `json:"id"`
	HolderID   uuid.UUID `json:"holderId"`
	HolderName string    `json:"holderName"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

type ConflictCheckResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

func FromItem(it *item.Item) *ItemResponse {
	var res ItemResponse
	fill(&res, it)
	return &res
}

func FromItemStatusResult(r *commands.ItemStatusResult) *ItemStatusResponse {
	var res ItemStatusResponse
	fill(&res, r)
	return &res
}

func FromAvailabilityView(v *queries.ItemAvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		DerivedStatus: v.DerivedStatus,
		Consistent:    v.Consistent,
		Loans:         fillSlice[LoanResponse](v.Loans),
		Reservations:  fillSlice[ReservationResponse](v.Reservations),
	}
	fill(&res.Item, &v.Item)
	return res
}

func FromConflictCheckView(v *queries.ConflictCheckView) *ConflictCheckResponse {
	return &ConflictCheckResponse{
		Available: v.Available,
		Conflicts: fillSlice[ConflictResponse](v.Conflicts),
	}
}
