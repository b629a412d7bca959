package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("DATA_DIR", "/srv/unitracker")
	t.Setenv("WORKSPACE_FILE", "")
	t.Setenv("UPLOADS_DIR", "")
	t.Setenv("WORKSPACE_BACKEND", "postgres")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("BODY_LIMIT_MB", "")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, filepath.Join("/srv/unitracker", "workspace.json"), cfg.Store.WorkspaceFile)
	assert.Equal(t, filepath.Join("/srv/unitracker", "uploads"), cfg.Store.UploadsDir)
	assert.Equal(t, WorkspaceBackendPostgres, cfg.Store.WorkspaceBackend)
	assert.Equal(t, UploadBackendDisk, cfg.Store.UploadBackend)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 25, cfg.BodyLimitMB)
}

func TestLoadReadOnly(t *testing.T) {
	tests := []struct {
		name     string
		vercel   string
		readOnly string
		want     bool
	}{
		{name: "local default", want: false},
		{name: "vercel default", vercel: "1", want: true},
		{name: "explicit override on vercel", vercel: "1", readOnly: "false", want: false},
		{name: "explicit read-only", readOnly: "true", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VERCEL", tt.vercel)
			t.Setenv("WORKSPACE_READ_ONLY", tt.readOnly)

			assert.Equal(t, tt.want, Load().Store.ReadOnly)
		})
	}
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
