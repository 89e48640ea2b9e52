package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains all service configuration.
type Config struct {
	App      App      `envPrefix:"APP_"`
	Postgres Postgres `envPrefix:"POSTGRES_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Kafka    Kafka    `envPrefix:"KAFKA_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Tracing  Tracing  `envPrefix:"OTEL_"`
}

// App contains HTTP server and logging parameters.
type App struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Postgres contains database connection parameters.
type Postgres struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"user"`
	Password     string `env:"PASSWORD" envDefault:"password"`
	DB           string `env:"DB" envDefault:"database"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"8"`
}

// Redis contains cache connection parameters.
type Redis struct {
	Host           string `env:"HOST" envDefault:"localhost"`
	Port           int    `env:"PORT" envDefault:"6379"`
	DB             int    `env:"DB" envDefault:"0"`
	Password       string `env:"PASSWORD"`
	PoolSize       int    `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns   int    `env:"MIN_IDLE_CONNS" envDefault:"2"`
	CacheTTLSecond int    `env:"CACHE_TTL_SECOND" envDefault:"60"`
}

// Kafka contains pet event publishing parameters. Publishing is disabled when Brokers is empty.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"pet-events"`
}

// JWT contains token issuing parameters. ExpSecond <= 0 issues tokens without expiry.
type JWT struct {
	SecretKey string `env:"SECRET_KEY" envDefault:"my_super_secret_key"`
	ExpSecond int    `env:"EXP_SECOND" envDefault:"0"`
}

// Tracing contains OTLP exporter parameters. Tracing is disabled when Endpoint is empty.
type Tracing struct {
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"pet-adoption"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load reads the optional env file at path and parses the environment into a Config.
// Variables already present in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Addr returns the HTTP listen address.
func (a App) Addr() string {
	return net.JoinHostPort(a.Host, a.Port)
}

// DSN returns the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

// Addr returns the Redis host:port.
func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// CacheTTL returns the pet cache expiration.
func (r Redis) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSecond) * time.Second
}

// Expiration returns the token lifetime, zero meaning no expiry.
func (j JWT) Expiration() time.Duration {
	if j.ExpSecond <= 0 {
		return 0
	}
	return time.Duration(j.ExpSecond) * time.Second
}
