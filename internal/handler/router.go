package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bibliolights/internal/handler/api"
	"bibliolights/internal/handler/middleware"
	"bibliolights/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog  *api.CatalogHandler
	Requests *api.BookRequestHandler
	Orders   *api.OrderHandler
	Profile  *api.ProfileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		books := apiGroup.Group("/books")
		books.Use(requireAuth)
		{
			addRoutes(books, []route{
				{Method: http.MethodPost, Path: "/:id/requests", Handler: h.Requests.RequestBook},
				{Method: http.MethodPost, Path: "/:id/favorite", Handler: h.Profile.ToggleFavorite},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(requireAuth)
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Requests.ListMine},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(requireAuth)
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Orders.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Orders.ListMine},
			})
		}

		me := apiGroup.Group("/users/me")
		me.Use(requireAuth)
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/favorites", Handler: h.Profile.Favorites},
				{Method: http.MethodGet, Path: "/details", Handler: h.Profile.Details},
				{Method: http.MethodPut, Path: "/details", Handler: h.Profile.SaveDetails},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/books", Handler: h.Catalog.List},
				{Method: http.MethodGet, Path: "/books/:id", Handler: h.Catalog.Get},
				{Method: http.MethodPost, Path: "/books", Handler: h.Catalog.Create},
				{Method: http.MethodPut, Path: "/books/:id", Handler: h.Catalog.Update},
				{Method: http.MethodDelete, Path: "/books/:id", Handler: h.Catalog.Delete},
				{Method: http.MethodPut, Path: "/books/:id/quota", Handler: h.Catalog.UpdateQuota},
				{Method: http.MethodPost, Path: "/books/:id/release", Handler: h.Catalog.Release},
				{Method: http.MethodGet, Path: "/books/:id/stats", Handler: h.Catalog.Stats},
				{Method: http.MethodGet, Path: "/requests", Handler: h.Requests.ListAll},
				{Method: http.MethodPut, Path: "/requests/:id", Handler: h.Requests.Transition},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Orders.ListAll},
				{Method: http.MethodPut, Path: "/orders/:id", Handler: h.Orders.UpdateStatus},
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
