package api

import (
	"net/http"

	reqdto "service-marketplace/internal/handler/dto/request"
	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book an available slot and charge the customer. A repeated Idempotency-Key replays the first result.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID idempotency key"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "Replayed"
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	customerID, ok := actorID(c)
	if !ok {
		return
	}

	var key *uuid.UUID
	if raw := c.GetHeader(IdempotencyKeyHeader); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, err, "Invalid Idempotency-Key")
			return
		}
		key = &parsed
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req, customerID, key)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.CreateBookingResponse{ID: result.BookingID, IsReplayed: result.IsReplayed})
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actor, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} map[string]any
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	customerID, ok := actorID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByCustomer(c.Request.Context(), customerID, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("bookings", items, next))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking. The refund is auto-approved more than 24 hours ahead.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Reason"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	customerID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err, "Invalid request format")
			return
		}
	}

	result, err := h.cmds.Cancel(c.Request.Context(), customerID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary List bookings on own services
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} map[string]any
// @Router /provider/bookings [get]
func (h *BookingHandler) ListForProvider(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByProvider(c.Request.Context(), providerID, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("bookings", items, next))
}

// @Summary Complete booking
// @Description Mark a confirmed booking completed and pay the provider out
// @Tags provider
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /provider/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	actOnTarget(c, h.cmds.Complete)
}

// @Summary Mark no-show
// @Tags provider
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /provider/bookings/{id}/no-show [post]
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	actOnTarget(c, h.cmds.MarkNoShow)
}
