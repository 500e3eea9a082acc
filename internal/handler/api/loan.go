package api

import (
	"net/http"

	reqdto "lending-core/internal/handler/dto/request"
	resdto "lending-core/internal/handler/dto/response"
	"lending-core/internal/handler/httperr"
	"lending-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	cmds commands.LoanCommands
}

func NewLoanHandler(cmds commands.LoanCommands) *LoanHandler {
	return &LoanHandler{cmds: cmds}
}

// @Summary Create loan
// @Description Lends an item. 409 lists the loans and reservations in the way.
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLoanRequest true "Loan"
// @Success 201 {object} resdto.LoanResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateLoan(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLoanResult(result))
}

// @Summary Return loan
// @Description A failed item status refresh is reported under warnings; the return still stands.
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} resdto.LoanResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/loans/{id}/return [post]
func (h *LoanHandler) Return(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.ReturnLoan(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoanResult(result))
}

// @Summary Report loan lost
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} resdto.LoanResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/loans/{id}/lost [post]
func (h *LoanHandler) ReportLost(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.ReportLost(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoanResult(result))
}
