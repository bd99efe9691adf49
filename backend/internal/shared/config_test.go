package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecordsConfig_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("SERVICE_PORT", "")

	cfg, err := LoadRecordsConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultRecordsServicePort, cfg.ServicePort)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, 4*1024*1024, cfg.GRPC.MaxRecvMsgSize)
}

func TestLoadRecordsConfig_MongoNeedsURI(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Mongo")
	t.Setenv("MONGO_URI", "")

	_, err := LoadRecordsConfig()
	assert.Error(t, err)

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	cfg, err := LoadRecordsConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreMongo, cfg.StoreBackend)
}

func TestLoadRecordsConfig_UnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	_, err := LoadRecordsConfig()
	assert.Error(t, err)
}

func TestLoadGatewayConfig(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadGatewayConfig()
	require.NoError(t, err)
	assert.Equal(t, devSessionSecret, cfg.Security.SessionSecret)
	assert.Equal(t, 90*time.Minute, cfg.Security.SessionTTL)
	assert.Equal(t, DefaultAdminPassword, cfg.Security.AdminPassword)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoadGatewayConfig_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadGatewayConfig()
	assert.Error(t, err)
}

func TestEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("SIRMS_TEST_INT", "x")
	t.Setenv("SIRMS_TEST_BOOL", "maybe")
	t.Setenv("SIRMS_TEST_DUR", "soon")

	assert.Equal(t, 7, GetIntEnv("SIRMS_TEST_INT", 7))
	assert.True(t, GetBoolEnv("SIRMS_TEST_BOOL", true))
	assert.Equal(t, time.Second, GetDurationEnv("SIRMS_TEST_DUR", time.Second))
	assert.Equal(t, "d", GetEnv("SIRMS_TEST_UNSET", "d"))
}
