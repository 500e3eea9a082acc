package api

import (
	"context"
	"net/http"

	resdto "lending-core/internal/handler/dto/response"
	"lending-core/internal/handler/httperr"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/worker"

	"github.com/gin-gonic/gin"
)

// SweepRunner is satisfied by *worker.Sweeper.
type SweepRunner interface {
	RunOnce(ctx context.Context) (*worker.RunSummary, error)
}

type MaintenanceHandler struct {
	cmds    commands.MaintenanceCommands
	sweeper SweepRunner
}

func NewMaintenanceHandler(cmds commands.MaintenanceCommands, sweeper SweepRunner) *MaintenanceHandler {
	return &MaintenanceHandler{cmds: cmds, sweeper: sweeper}
}

// @Summary Expire lapsed reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExpiryResponse
// @Router /api/admin/reservations/expire [post]
func (h *MaintenanceHandler) ExpireReservations(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	summary, err := h.cmds.ExpireReservations(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExpirySummary(summary))
}

// @Summary Reconcile item statuses
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReconcileResponse
// @Router /api/admin/items/reconcile [post]
func (h *MaintenanceHandler) ReconcileItems(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	summary, err := h.cmds.ReconcileItemStatuses(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileSummary(summary))
}

// @Summary Store date-derived loan statuses
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LoanRefreshResponse
// @Router /api/admin/loans/refresh [post]
func (h *MaintenanceHandler) RefreshLoans(c *gin.Context) {
	summary, err := h.cmds.RefreshLoanStatuses(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoanRefreshSummary(summary))
}

// @Summary Run the full sweep now
// @Description Skipped is true when another instance holds the sweep lease.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /api/admin/sweep [post]
func (h *MaintenanceHandler) Sweep(c *gin.Context) {
	summary, err := h.sweeper.RunOnce(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRunSummary(summary))
}
