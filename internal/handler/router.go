package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"petshop-api/internal/handler/api"
	"petshop-api/internal/handler/middleware"
	"petshop-api/internal/infra/observability"
	"petshop-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Appointments *api.AppointmentHandler
	Sales        *api.SaleHandler
	Inventory    *api.InventoryHandler
	Catalog      *api.CatalogHandler
	Customers    *api.CustomerHandler
	Users        *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, metrics *observability.Metrics, gatherer prometheus.Gatherer, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, gatherer, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *observability.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Users.Me},
		})

		addRoutes(apiGroup.Group("/agendamentos"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointments.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Appointments.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointments.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Appointments.Update},
			{Method: http.MethodPut, Path: "/:id/itens", Handler: h.Appointments.ReplaceItems},
			{Method: http.MethodPost, Path: "/:id/cancelar", Handler: h.Appointments.Cancel},
		})

		addRoutes(apiGroup.Group("/vendas"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Sales.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Sales.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Sales.Get},
			{Method: http.MethodPost, Path: "/:id/itens", Handler: h.Sales.AddItem},
			{Method: http.MethodPost, Path: "/:id/pagar", Handler: h.Sales.Pay},
		})

		addRoutes(apiGroup.Group("/estoque"), []route{
			{Method: http.MethodPost, Path: "/movimentos", Handler: h.Inventory.RecordMovement},
			{Method: http.MethodGet, Path: "/movimentos", Handler: h.Inventory.ListMovements},
			{Method: http.MethodGet, Path: "/saldo/:produtoId", Handler: h.Inventory.Balance},
		})

		addRoutes(apiGroup.Group("/servicos"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetService},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateService},
		})

		addRoutes(apiGroup.Group("/produtos"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateProduct},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetProduct},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateProduct},
		})

		addRoutes(apiGroup.Group("/clientes"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customers.CreateClient},
			{Method: http.MethodGet, Path: "", Handler: h.Customers.ListClients},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customers.GetClient},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Customers.UpdateClient},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customers.DeleteClient},
		})

		addRoutes(apiGroup.Group("/pets"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customers.CreatePet},
			{Method: http.MethodGet, Path: "", Handler: h.Customers.ListPets},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customers.GetPet},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Customers.UpdatePet},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customers.DeletePet},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/especies", Handler: h.Customers.ListSpecies},
			{Method: http.MethodGet, Path: "/consultor/aniversarios", Handler: h.Customers.UpcomingBirthdays},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/usuarios", Handler: h.Users.List},
			{Method: http.MethodGet, Path: "/usuarios/:id", Handler: h.Users.Get},
			{Method: http.MethodPut, Path: "/usuarios/:id", Handler: h.Users.ChangeRole},
		})
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
