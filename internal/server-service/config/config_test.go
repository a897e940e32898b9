package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredPostgresEnv(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "servers")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredPostgresEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Server.PingTimeout)
	assert.False(t, cfg.Server.PingPrivileged)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 5*time.Minute, cfg.Postgres.ConnMaxLifetime)
	assert.Equal(t, "servers.events", cfg.Kafka.ServerEventsTopic)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Mail.Enabled())
	assert.Equal(t, "0 0 * * *", cfg.Report.Cron)
	assert.Zero(t, cfg.Sweep.Interval)
	assert.Equal(t, 10, cfg.Sweep.Workers)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	setRequiredPostgresEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PING_TIMEOUT=2s\nKAFKA_BROKERS=kafka-1:9092,kafka-2:9092\nMAIL_EMAIL=noreply@example.com\nMAIL_HOST=smtp.example.com\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{"PING_TIMEOUT", "KAFKA_BROKERS", "MAIL_EMAIL", "MAIL_HOST"} {
			_ = os.Unsetenv(key)
		}
	})

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Server.PingTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.Mail.Enabled())
	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "")
	_ = os.Unsetenv("POSTGRES_HOST")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}
