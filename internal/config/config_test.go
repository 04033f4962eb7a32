package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYML = `api:
  environment: "test"
  port: "8080"
  base_url: "localhost:8080"
  allowed_cors_domains:
    - "http://localhost:3000"
  jwt_signing_key: "test-key"

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "postgres"
  db_name: "goldshop_test"

redis:
  addr: "localhost:6379"
  db: 1

images:
  path: "/tmp/images"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYML), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, "test-key", conf.API.JWTSigningKey)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "goldshop_test", conf.Postgres.DBName)
	assert.Equal(t, "localhost:6379", conf.Redis.Addr)
	assert.Equal(t, 1, conf.Redis.DB)
	assert.Equal(t, "/tmp/images", conf.Images.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("POSTGRES_PASSWORD", "s3cret")

	conf, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", conf.Postgres.Password)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

	require.Error(t, err)
}
