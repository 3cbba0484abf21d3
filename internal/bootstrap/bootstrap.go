package bootstrap

import (
	"context"
	"fmt"

	"referral-guard/internal/config"
	"referral-guard/internal/fraud"
	"referral-guard/internal/observability"
	"referral-guard/internal/store"
	"referral-guard/internal/workers"

	kafkaClient "referral-guard/internal/clients/kafka"
	redisClient "referral-guard/internal/clients/redis"
	fraudConsumer "referral-guard/internal/fraud/consumer"
	"referral-guard/internal/fraud/devices"
	fraudHandler "referral-guard/internal/fraud/handler"
	"referral-guard/internal/fraud/loops"
	"referral-guard/internal/fraud/patterns"
	fraudProcessor "referral-guard/internal/fraud/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Fraud engine
	FraudProcessor *fraudProcessor.Processor
	EventProcessor *fraudConsumer.FraudEventProcessor

	// HTTP intake
	FraudWorkerPool workers.WorkerPool
	FraudHandler    fraudHandler.Handler

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// FraudConfig overlays the deployment knobs onto the default detector thresholds
func FraudConfig(cfg *config.Config) fraud.Config {
	fraudCfg := fraud.DefaultConfig()
	if cfg.Fraud.BranchTimeout > 0 {
		fraudCfg.BranchTimeout = cfg.Fraud.BranchTimeout
	}
	if cfg.Fraud.MaxLoopDepth > 0 {
		fraudCfg.MaxLoopDepth = cfg.Fraud.MaxLoopDepth
	}
	return fraudCfg
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis only dedupes redelivered events, so a failed connection is not fatal
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Error(ctx, "failed to connect to redis, event dedupe disabled", err)
		deps.Redis = nil
	}

	var notifier fraudProcessor.Notifier
	if cfg.Kafka.SuspicionTopic != "" {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.BrokerList(),
			Topic:   cfg.Kafka.SuspicionTopic,
		}, logger)
		notifier = kafkaClient.NewSuspicionNotifier(deps.KafkaProducer)
	}

	fraudCfg := FraudConfig(cfg)

	loopDetector := loops.NewFailoverDetector(
		loops.NewRecursiveDetector(&deps.Store, logger),
		loops.NewIterativeDetector(&deps.Store, logger),
		logger,
	)

	deps.FraudProcessor = fraudProcessor.New(
		devices.New(&deps.Store, fraudCfg, logger),
		loopDetector,
		patterns.New(&deps.Store, fraudCfg, logger),
		&deps.Store,
		notifier,
		fraudCfg,
		logger,
	)

	var claimer fraudConsumer.EventClaimer
	if deps.Redis.IsEnabled() {
		claimer = deps.Redis
	}
	deps.EventProcessor = fraudConsumer.NewFraudEventProcessor(deps.FraudProcessor, claimer, cfg.Fraud.DedupeTTL, logger)

	deps.FraudWorkerPool = workers.NewWorkerPool(workers.WorkerPoolConfig{
		NumWorkers: cfg.WorkerPool.FraudWorkers,
		QueueSize:  cfg.WorkerPool.QueueSize,
	}, deps.EventProcessor, logger)
	deps.FraudHandler = fraudHandler.New(deps.FraudWorkerPool, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
	_ = d.Logger.Sync()
}
