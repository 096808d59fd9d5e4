package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseDefaults(t *testing.T) {
	unsetenv(t, "STAGE", "TABLE_PREFIX", "TOKEN_TTL", "LOG_LEVEL")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "realworld-groups-dev-Group", cfg.TableName("Group"))
}

func TestParseOverrides(t *testing.T) {
	unsetenv(t, "TABLE_PREFIX")
	t.Setenv("STAGE", "prod")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("HOOKS_TOPIC_ARN", "arn:aws:sns:us-east-1:123456789012:hooks")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Stage)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:hooks", cfg.HooksTopicArn)
	assert.Equal(t, "realworld-groups-prod-Set", cfg.TableName("Set"))

	t.Setenv("TABLE_PREFIX", "local-")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.Equal(t, "local-Set", cfg.TableName("Set"))
}

func TestParseRejectsBadDuration(t *testing.T) {
	t.Setenv("TOKEN_TTL", "forever")

	_, err := Parse()
	assert.Error(t, err)
}
