package main

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiwangfds/notestore/config"
	"github.com/weiwangfds/notestore/internal/storage"
)

func TestNewServer(t *testing.T) {
	handler := http.NotFoundHandler()

	t.Run("HTTP/1.1", func(t *testing.T) {
		srv := newServer(config.ServerConfig{Host: "127.0.0.1", Port: 8080, ReadTimeout: 5}, handler)
		assert.Equal(t, "127.0.0.1:8080", srv.Addr)
		assert.Equal(t, 5*time.Second, srv.ReadTimeout)
		assert.Nil(t, srv.TLSConfig)
	})

	t.Run("h2c", func(t *testing.T) {
		srv := newServer(config.ServerConfig{Host: "127.0.0.1", Port: 8080, EnableHTTP2: true}, handler)
		assert.Nil(t, srv.TLSConfig)
		assert.NotNil(t, srv.Handler)
	})

	t.Run("TLS", func(t *testing.T) {
		srv := newServer(config.ServerConfig{
			Host:        "127.0.0.1",
			Port:        8443,
			TLSCertFile: "cert.pem",
			TLSKeyFile:  "key.pem",
			EnableHTTP2: true,
		}, handler)
		require.NotNil(t, srv.TLSConfig)
		assert.Contains(t, srv.TLSConfig.NextProtos, "h2")
	})
}

func TestNewStore(t *testing.T) {
	root := t.TempDir()

	s, err := newStore(config.StorageConfig{Driver: config.DriverFS, CacheDir: root})
	require.NoError(t, err)
	assert.IsType(t, &storage.FSStore{}, s)

	s, err = newStore(config.StorageConfig{Driver: config.DriverSQLite, DSN: filepath.Join(root, "notes.db")})
	require.NoError(t, err)
	assert.IsType(t, &storage.SQLStore{}, s)
}
