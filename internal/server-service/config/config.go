package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
	Mail     MailConfig
	Report   ReportConfig
	Sweep    SweepConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string        `envconfig:"LOG_FILE" default:"./log/server-service.log"`
	PingTimeout    time.Duration `envconfig:"PING_TIMEOUT" default:"5s"`
	PingPrivileged bool          `envconfig:"PING_PRIVILEGED" default:"false"`
}

type PostgresConfig struct {
	Host            string        `envconfig:"POSTGRES_HOST" required:"true"`
	Port            int           `envconfig:"POSTGRES_PORT" required:"true"`
	User            string        `envconfig:"POSTGRES_USER" required:"true"`
	Password        string        `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName          string        `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns    int           `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"5m"`
}

// KafkaConfig leaves event publishing disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers           []string      `envconfig:"KAFKA_BROKERS"`
	ServerEventsTopic string        `envconfig:"KAFKA_SERVER_EVENTS_TOPIC" default:"servers.events"`
	WriteTimeout      time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type MailConfig struct {
	Email    string `envconfig:"MAIL_EMAIL"`
	Password string `envconfig:"MAIL_PASSWORD"`
	Host     string `envconfig:"MAIL_HOST"`
	Port     int    `envconfig:"MAIL_PORT" default:"587"`
}

type ReportConfig struct {
	Cron       string `envconfig:"REPORT_CRON" default:"0 0 * * *"`
	AdminEmail string `envconfig:"REPORT_ADMIN_EMAIL"`
}

// SweepConfig disables the periodic ping sweep when Interval is zero.
type SweepConfig struct {
	Interval time.Duration `envconfig:"PING_SWEEP_INTERVAL" default:"0s"`
	Workers  int           `envconfig:"PING_SWEEP_WORKERS" default:"10"`
	PageSize int           `envconfig:"PING_SWEEP_PAGE_SIZE" default:"100"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func (m MailConfig) Enabled() bool {
	return m.Email != "" && m.Host != ""
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
