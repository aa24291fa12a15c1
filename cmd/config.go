package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/joho/godotenv"
)

// Config holds the application configuration, loadable from environment
// variables (DISHLY_ prefix, optionally seeded from .env) or config.yaml.
type Config struct {
	LogLevel string `default:"info" env:"LOG_LEVEL" usage:"debug, info, warn or error"`
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Jobs     JobsConfig
}

type HTTPConfig struct {
	Port            string        `default:"8080"`
	RateLimitRPS    float64       `default:"20" env:"RATE_LIMIT_RPS" usage:"Requests per second per client, 0 disables the limiter"`
	RateLimitBurst  int           `default:"40" env:"RATE_LIMIT_BURST"`
	ShutdownTimeout time.Duration `default:"15s" env:"SHUTDOWN_TIMEOUT"`
}

type PostgresConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	User     string `default:"postgres"`
	Password string
	Name     string `default:"dishly"`
	SSLMode  string `default:"disable" env:"SSL_MODE"`
}

// DSN renders the key/value connection string understood by pgx.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET" usage:"HS256 key shared with the identity provider"`
}

// KafkaConfig configures the order event stream. Without brokers, events are
// dropped.
type KafkaConfig struct {
	Brokers []string
	Topic   string `default:"dishly.order-events"`
}

// RedisConfig configures the idempotency key store. Without an address,
// idempotency keys are ignored.
type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	IdempotencyTTL time.Duration `default:"24h" env:"IDEMPOTENCY_TTL"`
}

type JobsConfig struct {
	AuditSchedule   string        `default:"0 */15 * * * *" env:"AUDIT_SCHEDULE"`
	AuditWindow     time.Duration `default:"24h" env:"AUDIT_WINDOW"`
	RankingSchedule string        `default:"0 0 * * * *" env:"RANKING_SCHEDULE"`
}

// LoadConfig reads .env when present, then environment variables and
// config.yaml.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		EnvPrefix: "DISHLY",
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errList []error
	if c.Auth.JWTSecret == "" {
		errList = append(errList, errors.New("jwt secret is required: set DISHLY_AUTH_JWT_SECRET"))
	}
	if c.HTTP.Port == "" {
		errList = append(errList, errors.New("http port is required"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errList = append(errList, errors.New("kafka topic is required when brokers are set"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
