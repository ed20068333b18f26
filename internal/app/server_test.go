//go:build !integration

package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-quote/config"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer(t *testing.T) {
	tests := []struct {
		name                 string
		cfg                  config.ServerConfig
		expectedAddr         string
		expectedWriteTimeout time.Duration
	}{
		{"default request timeout", config.ServerConfig{Port: "8080"}, ":8080", 15 * time.Second},
		{"custom request timeout", config.ServerConfig{Port: "9090", RequestTimeout: 30 * time.Second}, ":9090", 35 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler, tt.cfg)

			require.NotNil(t, server.httpServer)
			assert.Equal(t, tt.expectedAddr, server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.expectedWriteTimeout, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, defaultShutdownTimeout, server.shutdownTimeout)
		})
	}
}

func TestServer_RunContext(t *testing.T) {
	server := NewServer(okHandler, config.ServerConfig{Port: "0"})

	var hooks []string
	server.OnShutdown(func(context.Context) error {
		hooks = append(hooks, "database")
		return nil
	})
	server.OnShutdown(func(context.Context) error {
		hooks = append(hooks, "metrics")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.RunContext(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
		assert.Equal(t, []string{"database", "metrics"}, hooks)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServer_RunContext_ListenError(t *testing.T) {
	server := NewServer(okHandler, config.ServerConfig{Port: "invalid-port"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, server.RunContext(ctx))
}

func TestServer_Shutdown_HookError(t *testing.T) {
	server := NewServer(okHandler, config.ServerConfig{Port: "0"})
	hookErr := errors.New("disconnect failed")
	server.OnShutdown(func(context.Context) error { return hookErr })

	assert.ErrorIs(t, server.Shutdown(), hookErr)
}
