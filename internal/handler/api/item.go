package api

import (
	"net/http"

	reqdto "lending-core/internal/handler/dto/request"
	resdto "lending-core/internal/handler/dto/response"
	"lending-core/internal/handler/httperr"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds         commands.ItemCommands
	availability queries.AvailabilityQueries
	history      queries.HistoryQueries
}

func NewItemHandler(cmds commands.ItemCommands, availability queries.AvailabilityQueries, history queries.HistoryQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, availability: availability, history: history}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	it, err := h.cmds.CreateItem(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItem(it))
}

// @Summary Item availability
// @Description Stored status, derived status and the open holdings of an item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id}/availability [get]
func (h *ItemHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.availability.GetItemAvailability(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Conflict check
// @Description Lists the holdings that would block a loan or reservation over [start, end)
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string true "loan or reservation"
// @Param start query string true "RFC3339 start"
// @Param end query string true "RFC3339 end"
// @Param exclude query string false "Reservation ID to ignore"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id}/conflicts [get]
func (h *ItemHandler) Conflicts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ConflictQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var (
		view *queries.ConflictCheckView
		err  error
	)
	if q.Kind == reqdto.ConflictKindLoan {
		view, err = h.availability.CheckLoan(c.Request.Context(), id, q.Start, q.End)
	} else {
		view, err = h.availability.CheckReservation(c.Request.Context(), id, q.Start, q.End, q.ExcludeID())
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictCheckView(view))
}

// @Summary Item history
// @Description Loan, reservation and staff action history, newest first
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.HistoryPageResponse
// @Failure 403 {object} httperr.Response
// @Router /api/items/{id}/history [get]
func (h *ItemHandler) History(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, limit, ok := pageQuery(c)
	if !ok {
		return
	}

	rows, next, err := h.history.ListByItem(c.Request.Context(), id, actor, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryPage(rows, next))
}

// @Summary Set or clear the out-of-order flag
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.SetOutOfOrderRequest true "Flag"
// @Success 200 {object} resdto.ItemStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id}/out-of-order [put]
func (h *ItemHandler) SetOutOfOrder(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetOutOfOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SetOutOfOrder(c.Request.Context(), id, *req.OutOfOrder, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemStatusResult(result))
}
