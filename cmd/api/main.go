package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/database/postgres"
	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/api"
	"github.com/aideveloperindia/KDSMS-sub000/internal/config"
	"github.com/aideveloperindia/KDSMS-sub000/internal/scheduler"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/aggregating"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authenticating"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authorizing"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/remarking"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/selling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	remarkRepo := repository.NewExecutiveRemarkRepository(pgConn)
	summaryRepo := repository.NewZoneSummaryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	resolver := authorizing.NewService()
	saleService := selling.NewService(saleRepo, resolver)
	remarkService := remarking.NewService(saleRepo, remarkRepo, userRepo, resolver)
	aggregator := aggregating.NewService(saleRepo, resolver)

	summarySyncService := scheduler.NewDailySummarySyncService(saleRepo, summaryRepo, cfg)
	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("could not start summary sync scheduler")
	}

	server, err := api.New(
		cfg,
		authenticator,
		saleService,
		remarkService,
		aggregator,
		summaryRepo,
		summarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("could not ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
