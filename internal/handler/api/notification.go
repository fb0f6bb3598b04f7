package api

import (
	"net/http"

	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} map[string]any
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	unreadOnly := c.Query("unread") == "true"
	items, next, err := h.q.List(c.Request.Context(), userID, unreadOnly, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("notifications", items, next))
}

// @Summary Unread count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CountResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	n, err := h.q.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CountResponse{Count: n})
}

// @Summary Mark notification read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actOnTarget(c, h.cmds.MarkRead)
}

// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CountResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	n, err := h.cmds.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CountResponse{Count: n})
}

// @Summary Delete notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	actOnTarget(c, h.cmds.Delete)
}
