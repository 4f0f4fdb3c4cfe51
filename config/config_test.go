package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SLOW_REQUEST_THRESHOLD", "")
	t.Setenv("POLICY_MIN_RESTAURANTS_ENABLED", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := Load()
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.False(t, cfg.UseMemoryStorage())
	assert.Equal(t, 4*time.Second, cfg.SlowRequestThreshold)
	assert.False(t, cfg.PolicyMinRestaurantsEnabled)
	assert.Empty(t, cfg.TrustedProxyList())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SLOW_REQUEST_THRESHOLD", "250ms")
	t.Setenv("POLICY_MIN_RESTAURANTS_ENABLED", "true")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.1")

	cfg := Load()
	assert.True(t, cfg.UseMemoryStorage())
	assert.Equal(t, 250*time.Millisecond, cfg.SlowRequestThreshold)
	assert.True(t, cfg.PolicyMinRestaurantsEnabled)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.1"}, cfg.TrustedProxyList())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")
	t.Setenv("MAIL_SEND_ENABLED", "maybe")
	t.Setenv("REDIS_DB", "x")

	cfg := Load()
	assert.Equal(t, 15*24*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.MailSendEnabled)
	assert.Zero(t, cfg.RedisDB)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5432", DBName: "r", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/r?sslmode=disable", cfg.PostgresDSN())
}
