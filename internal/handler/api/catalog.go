package api

import (
	"net/http"

	"service-marketplace/internal/domain/calendar"
	reqdto "service-marketplace/internal/handler/dto/request"
	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds     commands.CatalogCommands
	slotCmds commands.SlotCommands
	services queries.ServiceQueries
	slots    queries.SlotQueries
}

func NewCatalogHandler(
	cmds commands.CatalogCommands,
	slotCmds commands.SlotCommands,
	services queries.ServiceQueries,
	slots queries.SlotQueries,
) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, slotCmds: slotCmds, services: services, slots: slots}
}

// @Summary List services
// @Description List active services, newest first
// @Tags services
// @Produce json
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /services [get]
func (h *CatalogHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.services.ListActive(c.Request.Context(), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("services", items, next))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} queries.ServiceView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.services.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List available slots
// @Description Generates any missing slots for the horizon, then lists AVAILABLE slots from today
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string false "Restrict to one date (YYYY-MM-DD)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/slots [get]
func (h *CatalogHandler) Slots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var on *calendar.Date
	if v := c.Query("date"); v != "" {
		d, err := calendar.ParseDate(v)
		if err != nil {
			badRequest(c, err, "Invalid date")
			return
		}
		on = &d
	}

	if _, err := h.slotCmds.EnsureSlots(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	items, err := h.slots.ListAvailable(c.Request.Context(), id, on)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": items})
}

// @Summary List own services
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /provider/services [get]
func (h *CatalogHandler) ListMine(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	items, err := h.services.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

// @Summary Create service
// @Description Publish a service. Requires an approved account and an active subscription.
// @Tags provider
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /provider/services [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), providerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update service
// @Tags provider
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /provider/services/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), providerID, id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate service
// @Tags provider
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /provider/services/{id} [delete]
func (h *CatalogHandler) Deactivate(c *gin.Context) {
	actOnTarget(c, h.cmds.Deactivate)
}
