package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "product_events", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 10, cfg.RateLimit.Requests)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "catalog",
		Password: "p@ss word",
		Database: "catalog",
		Schema:   "public",
		SSLMode:  "disable",
	}

	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/catalog", u.Path)
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "public", u.Query().Get("search_path"))
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "cache:6379", RedisConfig{Host: "cache", Port: "6379"}.Addr())
}
