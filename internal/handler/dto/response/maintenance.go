package response

import (
	"lending-core/internal/usecase/commands"
	"lending-core/internal/worker"

	"github.com/google/uuid"
)

type ExpiryResponse struct {
	Expired []uuid.UUID `json:"expired"`
	Failed  int         `json:"failed"`
}

type CorrectionResponse struct {
	ItemID uuid.UUID `json:"itemId"`
	From   string    `json:"from"`
	To     string    `json:"to"`
}

type ReconcileResponse struct {
	Corrections []CorrectionResponse `json:"corrections"`
	Failed      int                  `json:"failed"`
}

type LoanRefreshResponse struct {
	Refreshed []uuid.UUID `json:"refreshed"`
	Failed    int         `json:"failed"`
}

type SweepResponse struct {
	Skipped        bool `json:"skipped"`
	Expired        int  `json:"expired"`
	LoansRefreshed int  `json:"loansRefreshed"`
	Corrections    int  `json:"corrections"`
	Failed         int  `json:"failed"`
}

func FromExpirySummary(s *commands.ExpirySummary) *ExpiryResponse {
	var res ExpiryResponse
	fill(&res, s)
	return &res
}

func FromReconcileSummary(s *commands.ReconcileSummary) *ReconcileResponse {
	return &ReconcileResponse{
		Corrections: fillSlice[CorrectionResponse](s.Corrections),
		Failed:      s.Failed,
	}
}

func FromLoanRefreshSummary(s *commands.LoanRefreshSummary) *LoanRefreshResponse {
	var res LoanRefreshResponse
	fill(&res, s)
	return &res
}

func FromRunSummary(s *worker.RunSummary) *SweepResponse {
	var res SweepResponse
	fill(&res, s)
	return &res
}
