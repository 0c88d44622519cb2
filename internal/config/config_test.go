package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "pixar-pro-default-user", cfg.TenantID)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, OutboxDriverMemory, cfg.OutboxDriver)
	assert.Equal(t, 10, cfg.OutboxMaxAttempts)
	assert.Equal(t, time.Second, cfg.OutboxBaseBackoff)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.TwilioEnabled())
	assert.False(t, cfg.SuggestionsEnabled())
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 20*time.Second, cfg.SuggestionTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TENANT_ID", "acme")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("OUTBOX_DRIVER", "asynq")
	t.Setenv("OUTBOX_BASE_BACKOFF", "250ms")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.TenantID)
	assert.Equal(t, StoreDriverRedis, cfg.StoreDriver)
	assert.Equal(t, OutboxDriverAsynq, cfg.OutboxDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.OutboxBaseBackoff)
	assert.True(t, cfg.IsProduction())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{name: "blank tenant", cfg: Config{TenantID: " ", StoreDriver: "memory", OutboxDriver: "memory", OutboxMaxAttempts: 1}},
		{name: "unknown store", cfg: Config{TenantID: "t", StoreDriver: "postgres", OutboxDriver: "memory", OutboxMaxAttempts: 1}},
		{name: "unknown outbox", cfg: Config{TenantID: "t", StoreDriver: "memory", OutboxDriver: "kafka", OutboxMaxAttempts: 1}},
		{name: "no attempts", cfg: Config{TenantID: "t", StoreDriver: "memory", OutboxDriver: "memory"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	var nilCfg *Config
	assert.Equal(t, time.UTC, nilCfg.Location())
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	LogError(logger, "estimate", "Save", "dispatch", map[string]string{"id": "e-1"}, errors.New("queue full"))

	out := buf.String()
	assert.True(t, strings.Contains(out, `"module":"estimate"`), out)
	assert.True(t, strings.Contains(out, `"msg":"queue full"`), out)
}
