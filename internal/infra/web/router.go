package web

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"

	"github.com/DioGolang/GoOrders/internal/infra/web/handler"
	"github.com/DioGolang/GoOrders/internal/infra/web/middleware"
	"github.com/DioGolang/GoOrders/pkg/logger"
	"github.com/DioGolang/GoOrders/pkg/metrics"
)

type RouterDeps struct {
	Orders      *handler.Order
	DB          *sql.DB
	Logger      logger.Logger
	Metrics     metrics.Metrics
	Registry    *prometheus.Registry
	RateLimiter *middleware.IPRateLimiter
}

func NewRouter(serviceName string, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MetricsWrapper(deps.Metrics))
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Handler(deps.Logger))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", deps.Orders.Create)
		r.Get("/", deps.Orders.List)
		r.Get("/{id}", deps.Orders.Get)
		r.Put("/{id}", deps.Orders.Update)
		r.Delete("/{id}", deps.Orders.Delete)
	})

	r.Method(http.MethodGet, "/health", handler.NewHealthHandler(serviceName, handler.WithPostgres(deps.DB)))
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
