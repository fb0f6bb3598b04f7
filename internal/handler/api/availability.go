package api

import (
	"net/http"

	reqdto "service-marketplace/internal/handler/dto/request"
	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds     commands.AvailabilityCommands
	slotCmds commands.SlotCommands
	q        queries.SlotQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, slotCmds commands.SlotCommands, q queries.SlotQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, slotCmds: slotCmds, q: q}
}

// @Summary List availability
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /provider/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	items, err := h.q.ListAvailability(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": items})
}

// @Summary Set availability
// @Description Add a weekly window. Windows on the same weekday must not overlap.
// @Tags provider
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetAvailabilityRequest true "Window"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /provider/availability [post]
func (h *AvailabilityHandler) Set(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.Set(c.Request.Context(), providerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Delete availability
// @Description Removes the window and the unbooked slots generated from it
// @Tags provider
// @Security BearerAuth
// @Param id path string true "Availability ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /provider/availability/{id} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	actOnTarget(c, h.cmds.Delete)
}

// @Summary Block slot
// @Tags provider
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /provider/slots/{id}/block [post]
func (h *AvailabilityHandler) BlockSlot(c *gin.Context) {
	actOnTarget(c, h.slotCmds.Block)
}

// @Summary Unblock slot
// @Tags provider
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /provider/slots/{id}/unblock [post]
func (h *AvailabilityHandler) UnblockSlot(c *gin.Context) {
	actOnTarget(c, h.slotCmds.Unblock)
}
