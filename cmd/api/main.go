package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/DioGolang/GoOrders/configs"
	orderuc "github.com/DioGolang/GoOrders/internal/application/usecase/order"
	"github.com/DioGolang/GoOrders/internal/infra/database"
	"github.com/DioGolang/GoOrders/internal/infra/report"
	"github.com/DioGolang/GoOrders/internal/infra/web"
	"github.com/DioGolang/GoOrders/internal/infra/web/handler"
	"github.com/DioGolang/GoOrders/internal/infra/web/middleware"
	"github.com/DioGolang/GoOrders/pkg/logger"
	"github.com/DioGolang/GoOrders/pkg/metrics"
	pkgotel "github.com/DioGolang/GoOrders/pkg/otel"
)

const serviceName = "goorders-api"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(serviceName, config.IsProd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.OtelCollectorAddr != "" {
		shutdown, err := pkgotel.InitProvider(ctx, serviceName, config.OtelCollectorAddr)
		if err != nil {
			log.Warn(ctx, "tracing disabled", logger.WithError(err))
		} else {
			defer shutdown()
		}
	}

	db, err := database.NewDB(config.DatabaseURL, config.ConnectionPoolSize, config.RequestTimeout())
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		panic(err)
	}
	log.Info(ctx, "database ready", logger.Int("pool_size", config.ConnectionPoolSize))

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, serviceName)

	// Shared handles, constructed once and passed by reference to every
	// request-scoped invocation.
	orderRepository := database.NewOrderRepository(db)
	statusReporter := report.NewHTTPReporter(config.StatusEndpoint, config.RequestTimeout(), log, m)

	orderHandler := handler.NewOrderHandler(
		&orderuc.CreateMetricsDecorator{Next: orderuc.NewCreateUseCase(orderRepository, statusReporter), Metrics: m},
		&orderuc.ListMetricsDecorator{Next: orderuc.NewListUseCase(orderRepository, statusReporter), Metrics: m},
		&orderuc.GetMetricsDecorator{Next: orderuc.NewGetUseCase(orderRepository, statusReporter), Metrics: m},
		&orderuc.UpdateMetricsDecorator{Next: orderuc.NewUpdateUseCase(orderRepository, statusReporter), Metrics: m},
		&orderuc.DeleteMetricsDecorator{Next: orderuc.NewDeleteUseCase(orderRepository, statusReporter), Metrics: m},
		log,
	)

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitPerSecond,
		Burst:             config.RateLimitBurst,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})

	router := web.NewRouter(serviceName, web.RouterDeps{
		Orders:      orderHandler,
		DB:          db,
		Logger:      log,
		Metrics:     m,
		Registry:    registry,
		RateLimiter: limiter,
	})

	server := &http.Server{
		Addr:    "0.0.0.0:" + config.ServerPort,
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info(gCtx, "http server listening", logger.String("port", config.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info(context.Background(), "shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(context.Background(), "server terminated", logger.WithError(err))
	}

	log.Info(context.Background(), "shutdown complete")
}
