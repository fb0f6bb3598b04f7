package api

import (
	"net/http"

	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	q queries.TransactionQueries
}

func NewTransactionHandler(q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{q: q}
}

// @Summary List own transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} map[string]any
// @Router /transactions [get]
func (h *TransactionHandler) ListMine(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListMine(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("transactions", items, next))
}
