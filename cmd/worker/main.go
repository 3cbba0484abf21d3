package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"referral-guard/internal/bootstrap"
	"referral-guard/internal/config"
	"referral-guard/internal/observability"
	"referral-guard/internal/workers"
)

// The worker consumes referral.created events from Kafka and runs the fraud
// check for each one. Offsets are committed only after the check finished.
func main() {
	ctx := context.Background()
	logger := observability.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	consumerCfg := workers.DefaultConsumerConfig(cfg.Kafka.BrokerList(), cfg.Kafka.ConsumerGroup, cfg.Kafka.ReferralTopic)
	consumerCfg.NumWorkers = cfg.WorkerPool.FraudWorkers
	consumerCfg.QueueSize = cfg.WorkerPool.QueueSize

	consumer := workers.NewConsumer(consumerCfg, deps.EventProcessor, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- consumer.Start(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info(ctx, "Shutting down fraud check worker...")
		consumer.Stop()
	case err := <-errCh:
		if err != nil {
			logger.Error(ctx, "fraud check consumer stopped with error", err)
		}
	}

	logger.Info(ctx, "Fraud check worker exited")
}
