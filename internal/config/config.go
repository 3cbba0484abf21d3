package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	WorkerPool WorkerPoolConfig
	Server     ServerConfig
	Fraud      FraudConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers        string
	ReferralTopic  string
	ConsumerGroup  string
	SuspicionTopic string // empty disables suspicion notifications
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// WorkerPoolConfig holds worker pool configuration for fraud check processing
type WorkerPoolConfig struct {
	FraudWorkers int // Number of workers running fraud checks
	QueueSize    int // Pending checks buffered before new ones are dropped
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// FraudConfig holds runtime knobs for the fraud checks
type FraudConfig struct {
	BranchTimeout time.Duration
	MaxLoopDepth  int
	DedupeTTL     time.Duration
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.ReferralTopic = getEnvWithDefault("KAFKA_REFERRAL_TOPIC", "referral-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "fraud-check-consumers")
	cfg.Kafka.SuspicionTopic = os.Getenv("KAFKA_SUSPICION_TOPIC")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Worker pool configuration
	if cfg.WorkerPool.FraudWorkers, err = getIntEnv("FRAUD_WORKERS", "8"); err != nil {
		return nil, err
	}
	if cfg.WorkerPool.QueueSize, err = getIntEnv("FRAUD_QUEUE_SIZE", "1000"); err != nil {
		return nil, err
	}

	// Fraud check configuration
	if cfg.Fraud.BranchTimeout, err = getDurationEnv("FRAUD_BRANCH_TIMEOUT", "3s"); err != nil {
		return nil, err
	}
	if cfg.Fraud.MaxLoopDepth, err = getIntEnv("FRAUD_MAX_LOOP_DEPTH", "10"); err != nil {
		return nil, err
	}
	if cfg.Fraud.DedupeTTL, err = getDurationEnv("FRAUD_DEDUPE_TTL", "24h"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// BrokerList splits the comma separated broker string
func (c *KafkaConfig) BrokerList() []string {
	parts := strings.Split(c.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key, defaultValue string) (int, error) {
	value, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func getDurationEnv(key, defaultValue string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}
