package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/api/handler"
	"github.com/aideveloperindia/KDSMS-sub000/internal/api/handler/router"
	"github.com/aideveloperindia/KDSMS-sub000/internal/config"
	"github.com/aideveloperindia/KDSMS-sub000/internal/scheduler"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/aggregating"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authenticating"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/remarking"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/selling"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	saleService selling.SaleService,
	remarkService remarking.RemarkService,
	aggregator aggregating.Aggregator,
	summaryRepo repository.ZoneSummaryRepository,
	summarySyncService *scheduler.DailySummarySyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Users(authenticator)...),
		router.WithRoutes(handler.Sales(saleService)...),
		router.WithRoutes(handler.Remarks(remarkService)...),
		router.WithRoutes(handler.Reports(aggregator, summaryRepo)...),
		router.WithRoutes(handler.CronJobs(summarySyncService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.MetricsMiddleware(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown failed")
		return err
	}

	logrus.Info("server shut down cleanly")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
