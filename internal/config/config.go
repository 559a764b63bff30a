package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	RegistryModeStore  = "store"
	RegistryModeRemote = "remote"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MySQL    MySQLConfig
	Redis    RedisConfig
	Registry RegistryConfig
	Sessions SessionConfig
	Workers  WorkerConfig
}

// ServerConfig holds HTTP and gRPC listener options.
type ServerConfig struct {
	HTTPPort string
	GRPCPort string
}

type MySQLConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	PoolSize int
}

// RegistryConfig selects where EPC lookups are answered: the local
// store (MySQL + Redis claims) or an upstream registry API.
type RegistryConfig struct {
	Mode    string
	BaseURL string
}

// SessionConfig controls the in-memory session registry.
type SessionConfig struct {
	IdleTTL       time.Duration
	SweepSchedule string
}

// WorkerConfig sizes the confirmation persistence pool.
type WorkerConfig struct {
	Count     int
	QueueSize int
}

// Load reads environment variables (optionally from the provided file)
// and materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes
		// from the environment directly.
		_ = godotenv.Load()
	}

	idleTTL, err := time.ParseDuration(getenvWithDefault("SESSION_IDLE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_IDLE_TTL: %w", err)
	}

	workerCount, err := getenvInt("WORKER_COUNT", 4)
	if err != nil {
		return nil, err
	}

	queueSize, err := getenvInt("CONFIRM_QUEUE_SIZE", 1024)
	if err != nil {
		return nil, err
	}

	poolSize, err := getenvInt("REDIS_POOL_SIZE", 50)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			HTTPPort: getenvWithDefault("HTTP_PORT", "8080"),
			GRPCPort: getenvWithDefault("GRPC_PORT", "50051"),
		},
		MySQL: MySQLConfig{
			DSN: getenvWithDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/epcinventory?parseTime=true"),
		},
		Redis: RedisConfig{
			Addr:     getenvWithDefault("REDIS_ADDR", "localhost:6379"),
			PoolSize: poolSize,
		},
		Registry: RegistryConfig{
			Mode:    getenvWithDefault("REGISTRY_MODE", RegistryModeStore),
			BaseURL: os.Getenv("REGISTRY_BASE_URL"),
		},
		Sessions: SessionConfig{
			IdleTTL:       idleTTL,
			SweepSchedule: getenvWithDefault("SESSION_SWEEP_SCHEDULE", "*/10 * * * *"),
		},
		Workers: WorkerConfig{
			Count:     workerCount,
			QueueSize: queueSize,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.HTTPPort == "" {
		return errors.New("HTTP_PORT must be provided")
	}
	if c.Server.GRPCPort == "" {
		return errors.New("GRPC_PORT must be provided")
	}
	if c.MySQL.DSN == "" {
		return errors.New("MYSQL_DSN must be provided")
	}
	if c.Redis.Addr == "" {
		return errors.New("REDIS_ADDR must be provided")
	}

	switch c.Registry.Mode {
	case RegistryModeStore:
	case RegistryModeRemote:
		if c.Registry.BaseURL == "" {
			return errors.New("REGISTRY_BASE_URL must be provided when REGISTRY_MODE=remote")
		}
	default:
		return fmt.Errorf("unknown REGISTRY_MODE %q", c.Registry.Mode)
	}

	if c.Sessions.IdleTTL <= 0 {
		return errors.New("SESSION_IDLE_TTL must be positive")
	}
	if c.Workers.Count <= 0 {
		return errors.New("WORKER_COUNT must be positive")
	}
	if c.Workers.QueueSize <= 0 {
		return errors.New("CONFIRM_QUEUE_SIZE must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
