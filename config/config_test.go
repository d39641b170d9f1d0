package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFlags(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load([]string{"-h", "127.0.0.1", "-p", "8080", "-c", dir})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, dir, cfg.Storage.CacheDir)
	assert.Equal(t, DriverFS, cfg.Storage.Driver)
	assert.True(t, cfg.Docs.Enabled)
	assert.False(t, cfg.Watcher.Enabled)
	assert.Equal(t, "en-US", cfg.I18n.DefaultLang)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Server.TLSEnabled())
}

func TestLoadLongFlags(t *testing.T) {
	cfg, err := Load([]string{"--host", "0.0.0.0", "--port", "9000", "--cache", "notes"})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "notes"), cfg.Storage.CacheDir)
	assert.True(t, filepath.IsAbs(cfg.Storage.CacheDir))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("NOTESTORE_SERVER_HOST", "localhost")
	t.Setenv("NOTESTORE_SERVER_PORT", "3000")
	t.Setenv("NOTESTORE_STORAGE_CACHE_DIR", t.TempDir())
	t.Setenv("NOTESTORE_STORAGE_DRIVER", DriverSQLite)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)

	// 命令行参数优先
	cfg, err = Load([]string{"-p", "4000"})
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notestore.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 8081
  enable_http2: true
storage:
  cache_dir: ` + dir + `
watcher:
  enabled: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := Load([]string{"--config", file})
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.Server.EnableHTTP2)
	assert.True(t, cfg.Watcher.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, dir, cfg.Storage.CacheDir)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"缺少全部参数", nil, "required option(s) not specified: host, port, cache"},
		{"缺少端口", []string{"-h", "localhost", "-c", dir}, "required option(s) not specified: port"},
		{"端口越界", []string{"-h", "localhost", "-p", "70000", "-c", dir}, "invalid port"},
		{"未知参数", []string{"--bogus"}, "unknown flag"},
		{"配置文件不存在", []string{"--config", filepath.Join(dir, "missing.yaml")}, "read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadInvalidDriver(t *testing.T) {
	t.Setenv("NOTESTORE_STORAGE_DRIVER", "redis")

	_, err := Load([]string{"-h", "localhost", "-p", "8080", "-c", t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage driver")
}

func TestLoadTLSPair(t *testing.T) {
	t.Setenv("NOTESTORE_SERVER_TLS_CERT_FILE", "cert.pem")

	_, err := Load([]string{"-h", "localhost", "-p", "8443", "-c", t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be set together")
}
