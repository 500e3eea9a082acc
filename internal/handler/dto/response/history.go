package response

import (
	"encoding/json"
	"time"

	"lending-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryEntryResponse struct {
	Source    string          `json:"source"`
	ID        uuid.UUID       `json:"id"`
	SubjectID *uuid.UUID      `json:"subjectId,omitempty"`
	ActorID   *uuid.UUID      `json:"actorId,omitempty"`
	Action    string          `json:"action"`
	Comment   string          `json:"comment,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type HistoryPageResponse struct {
	Items      []HistoryEntryResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromHistoryPage(rows []*queries.HistoryEntryView, next *queries.Cursor) *HistoryPageResponse {
	res := &HistoryPageResponse{Items: fillSlice[HistoryEntryResponse](rows)}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
