package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ironforge/finance-server/api"
	"github.com/ironforge/finance-server/internal/config"
	"github.com/ironforge/finance-server/internal/logging"
	"github.com/ironforge/finance-server/internal/outbox"
	"github.com/ironforge/finance-server/internal/service"
	"github.com/ironforge/finance-server/internal/store"
	"github.com/ironforge/finance-server/internal/webhook"
)

func main() {
	// A missing .env file is fine; the environment and defaults cover it.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("finance-server starting")

	client := webhook.NewClient(envConfig.WebhookRetrieveURL, envConfig.WebhookChangeURL, envConfig.WebhookTimeout)
	snapshot := store.NewStore()

	hydrateCtx, cancel := context.WithTimeout(context.Background(), envConfig.WebhookTimeout)
	defer cancel()
	initial, err := client.FetchSnapshot(hydrateCtx)
	if err != nil {
		// Start empty rather than refuse to serve; the webhook owns the
		// durable copy and a later restart can re-hydrate.
		logger.WithError(err).Error("main.hydrate.fetch failed, starting with empty snapshot")
	} else {
		snapshot.Hydrate(initial.Transactions, initial.Balances)
		logger.WithField("transactionCount", len(initial.Transactions)).Info("main.hydrate.loaded")
	}

	changeOutbox := outbox.NewOutbox(
		client,
		logger,
		envConfig.OutboxWorkers,
		uint64(envConfig.OutboxMaxRetries),
		envConfig.WebhookTimeout,
	)
	changeOutbox.Start()

	svc := service.NewService(snapshot, changeOutbox)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Outbox:  changeOutbox,
		}
		httpRest.Serve()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("finance-server stopping, draining outbox")
	changeOutbox.Stop()
}
