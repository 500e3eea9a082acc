//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/handler/api"
	resdto "lending-core/internal/handler/dto/response"
	"lending-core/internal/handler/httperr"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/testutil/builder"
	"lending-core/internal/testutil/httptest"
	commandsmock "lending-core/internal/testutil/mock/commands"
	"lending-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoanCommands
}

func (s *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoanCommands(s.mockCtrl)
	h := api.NewLoanHandler(s.mockCommands)

	s.router.POST("/loans", as(h.Create))
	s.router.POST("/loans/:id/return", as(h.Return))
	s.router.POST("/loans/:id/lost", as(h.ReportLost))
}

func (s *LoanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoanHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}

func (s *LoanHandlerTestSuite) TestCreate() {
	itemID := uuid.New()
	borrowerID := uuid.New()
	reqBody := map[string]any{
		"item_id":     itemID,
		"borrower_id": borrowerID,
		"borrowed_at": builder.Day(1),
		"due_at":      builder.Day(8),
		"notes":       "front desk",
		"tags":        []string{"course"},
	}

	s.Run("success: returns 201 with the item status", func() {
		created := builder.NewLoanBuilder().WithItem(itemID).WithBorrower(borrowerID).
			WithPeriod(builder.Day(1), builder.Day(8)).WithStatus(loan.StatusScheduled).Build()
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), commands.CreateLoanInput{
			ItemID:     itemID,
			BorrowerID: borrowerID,
			BorrowedAt: builder.Day(1),
			DueAt:      builder.Day(8),
			Notes:      "front desk",
			Tags:       []string{"course"},
		}, librarianActor).Return(&commands.LoanResult{Loan: created, ItemStatus: item.StatusBorrowed}, nil).Times(1)

		rec := perform(s.T(), s.router, http.MethodPost, "/loans", reqBody, "librarian")

		var response resdto.LoanResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID(), response.Loan.ID)
		s.Equal("SCHEDULED", response.Loan.Status)
		s.Equal("BORROWED", response.ItemStatus)
		s.Empty(response.Warnings)
	})

	s.Run("error: 409 lists the blocking holdings", func() {
		holderID := uuid.New()
		blocking := availability.Holding{
			Kind:       availability.HoldingReservation,
			ID:         uuid.New(),
			ItemID:     itemID,
			HolderID:   holderID,
			HolderName: "Alice",
			Period:     availability.ReconstructPeriod(builder.Day(2), builder.Day(4)),
		}
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any(), librarianActor).
			Return(nil, availability.NewConflictError([]availability.Holding{blocking})).Times(1)

		rec := perform(s.T(), s.router, http.MethodPost, "/loans", reqBody, "librarian")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "held by Alice")

		var detail httperr.ConflictDetail
		s.Require().NoError(json.Unmarshal(body.Detail, &detail))
		s.Require().Len(detail.Conflicts, 1)
		s.Equal("RESERVATION", detail.Conflicts[0].Kind)
		s.Equal(holderID, detail.Conflicts[0].HolderID)
		s.Equal(builder.Day(2), detail.Conflicts[0].Start.UTC())
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{"item out of order", commands.ErrItemOutOfOrder, http.StatusBadRequest},
			{"invalid period", availability.ErrInvalidPeriod, http.StatusBadRequest},
			{"item not found", commands.ErrItemNotFound, http.StatusNotFound},
			{"borrower not found", commands.ErrUserNotFound, http.StatusNotFound},
			{"member actor", commands.ErrStaffRequired, http.StatusForbidden},
			{"unknown", errs.New("pool closed"), http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := perform(s.T(), s.router, http.MethodPost, "/loans", reqBody, "librarian")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 on malformed bodies", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing item", httptest.Field("item_id", nil)},
			{"missing due date", httptest.Field("due_at", nil)},
			{"bad borrower id", httptest.Field("borrower_id", "someone")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := perform(s.T(), s.router, http.MethodPost, "/loans", httptest.DtoMap(s.T(), reqBody, tc.mutate), "librarian")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}

func (s *LoanHandlerTestSuite) TestReturn() {
	returned := builder.NewLoanBuilder().WithStatus(loan.StatusReturned).ReturnedAt(builder.Day(3)).Build()
	url := "/loans/" + returned.ID().String() + "/return"

	s.Run("success: reports the refreshed item status", func() {
		s.mockCommands.EXPECT().ReturnLoan(gomock.Any(), returned.ID(), librarianActor).
			Return(&commands.LoanResult{Loan: returned, ItemStatus: item.StatusAvailable}, nil).Times(1)

		rec := perform(s.T(), s.router, http.MethodPost, url, nil, "librarian")

		var response resdto.LoanResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("RETURNED", response.Loan.Status)
		s.NotNil(response.Loan.ReturnedAt)
		s.Equal("AVAILABLE", response.ItemStatus)
	})

	s.Run("success: a failed refresh is a warning, not an error", func() {
		s.mockCommands.EXPECT().ReturnLoan(gomock.Any(), returned.ID(), librarianActor).
			Return(&commands.LoanResult{
				Loan:     returned,
				Warnings: []error{errs.Wrapf(commands.ErrStatusRefresh, "item %s", returned.ItemID())},
			}, nil).Times(1)

		rec := perform(s.T(), s.router, http.MethodPost, url, nil, "librarian")

		var response resdto.LoanResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.ItemStatus)
		s.Require().Len(response.Warnings, 1)
		s.Contains(response.Warnings[0], "could not be refreshed")
	})

	s.Run("error: 400 when the loan is already closed", func() {
		s.mockCommands.EXPECT().ReturnLoan(gomock.Any(), returned.ID(), librarianActor).
			Return(nil, loan.ErrAlreadyReturned).Times(1)

		rec := perform(s.T(), s.router, http.MethodPost, url, nil, "librarian")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *LoanHandlerTestSuite) TestReportLost() {
	loanID := uuid.New()
	url := "/loans/" + loanID.String() + "/lost"

	s.Run("success: the item goes out of order", func() {
		lost := builder.NewLoanBuilder().WithStatus(loan.StatusOutOfOrder).Build()
		s.mockCommands.EXPECT().ReportLost(gomock.Any(), loanID, adminActor).
			Return(&commands.LoanResult{Loan: lost, ItemStatus: item.StatusOutOfOrder}, nil).Times(1)

		rec := perform(s.T(), s.router, http.MethodPost, url, nil, "admin")

		var response resdto.LoanResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("OUT_OF_ORDER", response.Loan.Status)
		s.Equal("OUT_OF_ORDER", response.ItemStatus)
	})

	s.Run("error: 404 for an unknown loan", func() {
		s.mockCommands.EXPECT().ReportLost(gomock.Any(), loanID, adminActor).
			Return(nil, commands.ErrLoanNotFound).Times(1)

		rec := perform(s.T(), s.router, http.MethodPost, url, nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "loan not found")
	})
}
