package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/api"
	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *middleware.Logger
	Auth     *middleware.AuthMiddleware
	Observer middleware.RequestObserver
	Metrics  http.Handler `name:"metrics"`

	AuthHandler         *api.AuthHandler
	CatalogHandler      *api.CatalogHandler
	AvailabilityHandler *api.AvailabilityHandler
	BookingHandler      *api.BookingHandler
	RefundHandler       *api.RefundHandler
	SubscriptionHandler *api.SubscriptionHandler
	AdminHandler        *api.AdminHandler
	NotificationHandler *api.NotificationHandler
	TransactionHandler  *api.TransactionHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.Metrics(p.Observer))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.Auth.RequireAuth()
	customer := p.Auth.RequireRole(user.RoleCustomer)
	provider := p.Auth.RequireRole(user.RoleServiceProvider)
	admin := p.Auth.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.AuthHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		// Public catalog
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: p.CatalogHandler.List},
			{Method: http.MethodGet, Path: "/services/:id", Handler: p.CatalogHandler.Get},
			{Method: http.MethodGet, Path: "/services/:id/slots", Handler: p.CatalogHandler.Slots},
			{Method: http.MethodGet, Path: "/subscription-plans", Handler: p.SubscriptionHandler.ListPlans},
		})

		authed := apiGroup.Group("")
		authed.Use(requireAuth)
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/transactions", Handler: p.TransactionHandler.ListMine},
				{Method: http.MethodGet, Path: "/notifications", Handler: p.NotificationHandler.List},
				{Method: http.MethodGet, Path: "/notifications/unread-count", Handler: p.NotificationHandler.UnreadCount},
				{Method: http.MethodPost, Path: "/notifications/read-all", Handler: p.NotificationHandler.MarkAllRead},
				{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: p.NotificationHandler.MarkRead},
				{Method: http.MethodDelete, Path: "/notifications/:id", Handler: p.NotificationHandler.Delete},

				{Method: http.MethodPost, Path: "/bookings", Handler: p.BookingHandler.Create, Mw: []gin.HandlerFunc{customer}},
				{Method: http.MethodGet, Path: "/bookings", Handler: p.BookingHandler.ListMine, Mw: []gin.HandlerFunc{customer}},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: p.BookingHandler.Get, Mw: []gin.HandlerFunc{customer}},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: p.BookingHandler.Cancel, Mw: []gin.HandlerFunc{customer}},
				{Method: http.MethodGet, Path: "/refunds", Handler: p.RefundHandler.ListMine, Mw: []gin.HandlerFunc{customer}},
			})

			prov := authed.Group("/provider")
			prov.Use(provider)
			addRoutes(prov, []route{
				{Method: http.MethodGet, Path: "/services", Handler: p.CatalogHandler.ListMine},
				{Method: http.MethodPost, Path: "/services", Handler: p.CatalogHandler.Create},
				{Method: http.MethodPut, Path: "/services/:id", Handler: p.CatalogHandler.Update},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: p.CatalogHandler.Deactivate},

				{Method: http.MethodGet, Path: "/availability", Handler: p.AvailabilityHandler.List},
				{Method: http.MethodPost, Path: "/availability", Handler: p.AvailabilityHandler.Set},
				{Method: http.MethodDelete, Path: "/availability/:id", Handler: p.AvailabilityHandler.Delete},
				{Method: http.MethodPost, Path: "/slots/:id/block", Handler: p.AvailabilityHandler.BlockSlot},
				{Method: http.MethodPost, Path: "/slots/:id/unblock", Handler: p.AvailabilityHandler.UnblockSlot},

				{Method: http.MethodGet, Path: "/bookings", Handler: p.BookingHandler.ListForProvider},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: p.BookingHandler.Complete},
				{Method: http.MethodPost, Path: "/bookings/:id/no-show", Handler: p.BookingHandler.MarkNoShow},

				{Method: http.MethodGet, Path: "/subscriptions", Handler: p.SubscriptionHandler.Current},
				{Method: http.MethodPost, Path: "/subscriptions", Handler: p.SubscriptionHandler.Subscribe},
				{Method: http.MethodPost, Path: "/subscriptions/cancel-auto-renew", Handler: p.SubscriptionHandler.CancelAutoRenew},
			})

			adm := authed.Group("/admin")
			adm.Use(admin)
			addRoutes(adm, []route{
				{Method: http.MethodGet, Path: "/refunds/pending", Handler: p.RefundHandler.ListPending},
				{Method: http.MethodPost, Path: "/refunds/:id/approve", Handler: p.RefundHandler.Approve},
				{Method: http.MethodPost, Path: "/refunds/:id/reject", Handler: p.RefundHandler.Reject},
				{Method: http.MethodPost, Path: "/providers/:id/approve", Handler: p.AdminHandler.ApproveProvider},
				{Method: http.MethodPost, Path: "/providers/:id/reject", Handler: p.AdminHandler.RejectProvider},
				{Method: http.MethodPost, Path: "/plans", Handler: p.SubscriptionHandler.CreatePlan},
				{Method: http.MethodDelete, Path: "/plans/:id", Handler: p.SubscriptionHandler.DeactivatePlan},
				{Method: http.MethodGet, Path: "/transactions", Handler: p.AdminHandler.ListTransactions},
				{Method: http.MethodGet, Path: "/transactions/summary", Handler: p.AdminHandler.TransactionSummary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
