package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbook/internal/domain/user"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Directory *api.DirectoryHandler
	Booking   *api.BookingHandler
	Owner     *api.OwnerHandler
	Review    *api.ReviewHandler
	Admin     *api.AdminHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	directory *api.DirectoryHandler,
	booking *api.BookingHandler,
	owner *api.OwnerHandler,
	review *api.ReviewHandler,
	admin *api.AdminHandler,
) Handlers {
	return Handlers{
		Auth:      auth,
		Directory: directory,
		Booking:   booking,
		Owner:     owner,
		Review:    review,
		Admin:     admin,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rl *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/businesses", Handler: h.Directory.List},
				{Method: http.MethodGet, Path: "/businesses/:slug", Handler: h.Directory.Profile},
				{Method: http.MethodGet, Path: "/businesses/:slug/availability", Handler: h.Directory.Availability},
				{Method: http.MethodGet, Path: "/businesses/:slug/reviews", Handler: h.Directory.Reviews},
				{Method: http.MethodGet, Path: "/businesses/:slug/rating-stats", Handler: h.Directory.RatingStats},
				{
					Method:  http.MethodPost,
					Path:    "/businesses/:slug/bookings",
					Handler: h.Booking.Create,
					Mw:      []gin.HandlerFunc{rl.Limit("bookings", cfg.RateLimit.BookingLimit)},
				},
				{
					Method:  http.MethodPost,
					Path:    "/reviews",
					Handler: h.Review.Create,
					Mw:      []gin.HandlerFunc{rl.Limit("reviews", cfg.RateLimit.ReviewLimit)},
				},
			})
		}

		owner := apiGroup.Group("/owner")
		owner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleOwner))
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/business", Handler: h.Owner.GetBusiness},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Owner.GetRule},
				{Method: http.MethodPut, Path: "/availability", Handler: h.Owner.PutRule},
				{Method: http.MethodGet, Path: "/services", Handler: h.Owner.ListServices},
				{Method: http.MethodPost, Path: "/services", Handler: h.Owner.CreateService},
				{Method: http.MethodPatch, Path: "/services/:id", Handler: h.Owner.UpdateService},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Owner.DeactivateService},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/reviews/send-due", Handler: h.Admin.SendDueReviews},
				{Method: http.MethodPost, Path: "/idempotency-keys/purge", Handler: h.Admin.PurgeIdempotencyKeys},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Admin.ListNotifications},
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

// chainHandlers runs per-route middleware in order. The chain is the route's
// last handler, so c.Next() inside it has nothing left to run.
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
