package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestNewConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WORKSHOP_STORE_DRIVER", "memory")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "LKR", cfg.Billing.Currency)
	assert.Equal(t, "counters", cfg.DynamoDB.CountersTable)
	assert.Zero(t, cfg.Catalog.CacheTTL)
}

func TestNewConfig_LegacyEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("WORKSHOP_AUTH_ADMIN_KEY", "1132")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverDynamoDB, cfg.Store.Driver)
	assert.Equal(t, "sa-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
	assert.True(t, cfg.Payments.Mock)
	assert.Equal(t, "1132", cfg.Auth.AdminKey)
}

func TestValidate(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Store.Driver = "mongo"
	assert.Error(t, cfg.Validate())

	cfg.Store.Driver = DriverPostgres
	assert.ErrorContains(t, cfg.Validate(), "postgres.url")

	cfg.Postgres.URL = "postgres://localhost/workshop"
	assert.NoError(t, cfg.Validate())

	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}
