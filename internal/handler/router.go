package handler

import (
	"net/http"

	"lending-core/internal/domain/user"
	"lending-core/internal/handler/api"
	"lending-core/internal/handler/middleware"
	"lending-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler for routing.
type Handlers struct {
	Auth        *api.AuthHandler
	Item        *api.ItemHandler
	Loan        *api.LoanHandler
	Reservation *api.ReservationHandler
	Maintenance *api.MaintenanceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRoleAtLeast(user.RoleLibrarian)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Item.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Item.Availability},
				{Method: http.MethodGet, Path: "/:id/conflicts", Handler: h.Item.Conflicts},
				{Method: http.MethodGet, Path: "/:id/history", Handler: h.Item.History, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPut, Path: "/:id/out-of-order", Handler: h.Item.SetOutOfOrder, Mw: []gin.HandlerFunc{admin}},
			})
		}

		loans := apiGroup.Group("/loans")
		loans.Use(authMiddleware.RequireAuth(), staff)
		{
			addRoutes(loans, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Loan.Create},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Loan.Return},
				{Method: http.MethodPost, Path: "/:id/lost", Handler: h.Loan.ReportLost, Mw: []gin.HandlerFunc{admin}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Modify},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListByUser},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAuth(), admin)
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/reservations/expire", Handler: h.Maintenance.ExpireReservations},
				{Method: http.MethodPost, Path: "/items/reconcile", Handler: h.Maintenance.ReconcileItems},
				{Method: http.MethodPost, Path: "/loans/refresh", Handler: h.Maintenance.RefreshLoans},
				{Method: http.MethodPost, Path: "/sweep", Handler: h.Maintenance.Sweep},
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
