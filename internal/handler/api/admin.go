package api

import (
	"net/http"

	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
	txq  queries.TransactionQueries
}

func NewAdminHandler(cmds commands.AdminCommands, txq queries.TransactionQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, txq: txq}
}

// @Summary Approve provider
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/providers/{id}/approve [post]
func (h *AdminHandler) ApproveProvider(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.ApproveProvider(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject provider
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param request body reqdto.DecisionRequest false "Reason"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/providers/{id}/reject [post]
func (h *AdminHandler) RejectProvider(c *gin.Context) {
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
	if err := h.cmds.RejectProvider(c.Request.Context(), id, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List transactions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param type query string false "PAYMENT, REFUND, PAYOUT or SUBSCRIPTION"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/transactions [get]
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.txq.ListAll(c.Request.Context(), c.Query("type"), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("transactions", items, next))
}

// @Summary Transaction summary
// @Description Count and total per type and status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /admin/transactions/summary [get]
func (h *AdminHandler) TransactionSummary(c *gin.Context) {
	items, err := h.txq.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": items})
}
