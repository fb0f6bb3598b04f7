package api

import (
	"context"
	"net/http"

	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RefundHandler struct {
	cmds commands.RefundCommands
	q    queries.RefundQueries
}

func NewRefundHandler(cmds commands.RefundCommands, q queries.RefundQueries) *RefundHandler {
	return &RefundHandler{cmds: cmds, q: q}
}

// @Summary List own refunds
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /refunds [get]
func (h *RefundHandler) ListMine(c *gin.Context) {
	customerID, ok := actorID(c)
	if !ok {
		return
	}
	items, err := h.q.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"refunds": items})
}

// @Summary List pending refunds
// @Description Oldest request first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows"
// @Success 200 {object} map[string]any
// @Router /admin/refunds/pending [get]
func (h *RefundHandler) ListPending(c *gin.Context) {
	_, limit := pageParams(c)
	items, err := h.q.ListPending(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"refunds": items})
}

// @Summary Approve refund
// @Description Approve a pending refund and pay it back through the original gateway
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Param request body reqdto.DecisionRequest false "Admin notes"
// @Success 204 "No Content"
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/refunds/{id}/approve [post]
func (h *RefundHandler) Approve(c *gin.Context) {
	h.decide(c, h.cmds.Approve)
}

// @Summary Reject refund
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Param request body reqdto.DecisionRequest false "Admin notes"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/refunds/{id}/reject [post]
func (h *RefundHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.Reject)
}

func (h *RefundHandler) decide(c *gin.Context, op func(ctx context.Context, refundID uuid.UUID, req reqdto.DecisionRequest) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err, "Invalid request format")
			return
		}
	}
	if err := op(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
