package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CURTI_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("WRITABLE_TMP", "")
}

func TestInitConfigDefaults(t *testing.T) {
	clearEnv(t)

	conf := initConfig()
	assert.Equal(t, ":8080", conf.ServerAddr)
	assert.Equal(t, "./database.db", conf.SQLite.Path)
	assert.Equal(t, "./static/uploads", conf.Storage.UploadDir)
	assert.Equal(t, "/static/uploads", conf.Storage.UploadPrefix)
	assert.Equal(t, defaultSessionSecret, conf.Auth.SessionSecret)
	assert.Empty(t, conf.Auth.AdminPasswordHash)
}

func TestInitConfigReadsYamlFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "host: example.ch\nserverAddr: \":9090\"\nsqlite:\n  path: /data/site.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CURTI_CONFIG_PATH", path)

	conf := initConfig()
	assert.Equal(t, "example.ch", conf.Host)
	assert.Equal(t, ":9090", conf.ServerAddr)
	assert.Equal(t, "/data/site.db", conf.SQLite.Path)
	// fields absent from the file keep their defaults
	assert.Equal(t, "/static/uploads", conf.Storage.UploadPrefix)
}

func TestInitConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("WRITABLE_TMP", "1")

	conf := initConfig()
	assert.Equal(t, "from-env", conf.Auth.SessionSecret)
	assert.Equal(t, "$2a$10$hash", conf.Auth.AdminPasswordHash)
	assert.Equal(t, "/tmp/database.db", conf.SQLite.Path)
}
