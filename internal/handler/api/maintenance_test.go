//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"lending-core/internal/domain/item"
	"lending-core/internal/handler/api"
	resdto "lending-core/internal/handler/dto/response"
	"lending-core/internal/testutil/httptest"
	commandsmock "lending-core/internal/testutil/mock/commands"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type stubSweeper struct {
	summary *worker.RunSummary
	err     error
}

func (s stubSweeper) RunOnce(context.Context) (*worker.RunSummary, error) {
	return s.summary, s.err
}

type MaintenanceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMaintenanceCommands
	sweeper      *stubSweeper
}

func (s *MaintenanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMaintenanceCommands(s.mockCtrl)
	s.sweeper = &stubSweeper{}
	h := api.NewMaintenanceHandler(s.mockCommands, s.sweeper)

	s.router.POST("/admin/reservations/expire", as(h.ExpireReservations))
	s.router.POST("/admin/items/reconcile", as(h.ReconcileItems))
	s.router.POST("/admin/loans/refresh", as(h.RefreshLoans))
	s.router.POST("/admin/sweep", as(h.Sweep))
}

func (s *MaintenanceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMaintenanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceHandlerTestSuite))
}

func (s *MaintenanceHandlerTestSuite) TestExpireReservations() {
	expired := []uuid.UUID{uuid.New(), uuid.New()}
	s.mockCommands.EXPECT().ExpireReservations(gomock.Any(), adminActor).
		Return(&commands.ExpirySummary{Expired: expired, Failed: 1}, nil).Times(1)

	rec := perform(s.T(), s.router, http.MethodPost, "/admin/reservations/expire", nil, "admin")

	var response resdto.ExpiryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(expired, response.Expired)
	s.Equal(1, response.Failed)
}

func (s *MaintenanceHandlerTestSuite) TestReconcileItems() {
	itemID := uuid.New()
	s.mockCommands.EXPECT().ReconcileItemStatuses(gomock.Any(), adminActor).
		Return(&commands.ReconcileSummary{Corrections: []item.Correction{
			{ItemID: itemID, From: item.StatusBorrowed, To: item.StatusAvailable},
		}}, nil).Times(1)

	rec := perform(s.T(), s.router, http.MethodPost, "/admin/items/reconcile", nil, "admin")

	var response resdto.ReconcileResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Corrections, 1)
	s.Equal(itemID, response.Corrections[0].ItemID)
	s.Equal("BORROWED", response.Corrections[0].From)
	s.Equal("AVAILABLE", response.Corrections[0].To)
}

func (s *MaintenanceHandlerTestSuite) TestRefreshLoans() {
	refreshed := []uuid.UUID{uuid.New()}
	s.mockCommands.EXPECT().RefreshLoanStatuses(gomock.Any()).
		Return(&commands.LoanRefreshSummary{Refreshed: refreshed}, nil).Times(1)

	rec := perform(s.T(), s.router, http.MethodPost, "/admin/loans/refresh", nil, "admin")

	var response resdto.LoanRefreshResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(refreshed, response.Refreshed)
}

func (s *MaintenanceHandlerTestSuite) TestSweep() {
	s.Run("success: reports the run", func() {
		s.sweeper.summary = &worker.RunSummary{Expired: 2, LoansRefreshed: 1, Corrections: 1}
		s.sweeper.err = nil

		rec := perform(s.T(), s.router, http.MethodPost, "/admin/sweep", nil, "admin")

		var response resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Skipped)
		s.Equal(2, response.Expired)
		s.Equal(1, response.LoansRefreshed)
	})

	s.Run("success: a held lease is reported as skipped", func() {
		s.sweeper.summary = &worker.RunSummary{Skipped: true}

		rec := perform(s.T(), s.router, http.MethodPost, "/admin/sweep", nil, "admin")

		var response resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Skipped)
	})

	s.Run("error: 500 when the run fails", func() {
		s.sweeper.summary = nil
		s.sweeper.err = context.DeadlineExceeded

		rec := perform(s.T(), s.router, http.MethodPost, "/admin/sweep", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
