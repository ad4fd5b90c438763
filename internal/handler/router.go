package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/api"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/middleware"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// StoreInfo is reported by /health.
type StoreInfo struct {
	Backend  string
	DemoMode bool
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Calendar    *api.CalendarHandler
	Handover    *api.HandoverHandler
	Diagnostics *api.DiagnosticsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, store StoreInfo, logger *slog.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, store)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, store StoreInfo) {
	engine.GET("/health", healthCheck(store))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireStaff()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/status", Handler: h.Auth.Status},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/suggestions", Handler: h.Reservation.Suggestions},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPost, Path: "/:id/remove-day", Handler: h.Reservation.RemoveDay, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Reservation.CheckOut, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPost, Path: "/:id/medication-note", Handler: h.Reservation.AddMedicationNote, Mw: []gin.HandlerFunc{staff}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/days/:date", Handler: h.Calendar.Day},
			{Method: http.MethodGet, Path: "/calendar/:year/:month", Handler: h.Calendar.Month},
			{Method: http.MethodGet, Path: "/calendar.ics", Handler: h.Calendar.ICS},
			{Method: http.MethodGet, Path: "/diagnostics", Handler: h.Diagnostics.Run},
		})

		handover := apiGroup.Group("/handover")
		handover.Use(staff)
		addRoutes(handover, []route{
			{Method: http.MethodPost, Path: "/:date", Handler: h.Handover.Generate},
			{Method: http.MethodGet, Path: "/:date/report", Handler: h.Handover.Report},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy and which reservation store it uses
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func healthCheck(store StoreInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Service is healthy",
			"store":    store.Backend,
			"demoMode": store.DemoMode,
		})
	}
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
