package api

import (
	"net/http"

	reqdto "service-marketplace/internal/handler/dto/request"
	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	cmds  commands.SubscriptionCommands
	plans commands.PlanCommands
	q     queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, plans commands.PlanCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, plans: plans, q: q}
}

// @Summary List plans
// @Tags subscriptions
// @Produce json
// @Success 200 {object} map[string]any
// @Router /subscription-plans [get]
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	items, err := h.q.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": items})
}

// @Summary Current subscription
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.SubscriptionView
// @Failure 404 {object} map[string]string
// @Router /provider/subscriptions [get]
func (h *SubscriptionHandler) Current(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	view, err := h.q.Current(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Subscribe
// @Description Charge the plan price and start a subscription from today
// @Tags provider
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubscribeRequest true "Subscribe request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /provider/subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.Subscribe(c.Request.Context(), providerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Cancel auto-renew
// @Tags provider
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /provider/subscriptions/cancel-auto-renew [post]
func (h *SubscriptionHandler) CancelAutoRenew(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.cmds.CancelAutoRenew(c.Request.Context(), providerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create plan
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePlanRequest true "Plan"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /admin/plans [post]
func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var req reqdto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.plans.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Deactivate plan
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/plans/{id} [delete]
func (h *SubscriptionHandler) DeactivatePlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.plans.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
