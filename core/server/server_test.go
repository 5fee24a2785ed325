package server_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/server"
)

func hello() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
}

func waitReady(t *testing.T, srv *server.Server) {
	t.Helper()
	select {
	case <-srv.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}
}

func TestServerRunAndShutdown(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(2*time.Second))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, hello())() }()

	waitReady(t, srv)

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "hello", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + srv.Addr() + "/")
	assert.Error(t, err)
}

func TestServerStartTwice(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { _ = srv.Start(ctx, hello()) }()
	waitReady(t, srv)
	t.Cleanup(func() { _ = srv.Stop() })

	assert.ErrorIs(t, srv.Start(ctx, hello()), server.ErrServerAlreadyRunning)
}

func TestServerStartErrors(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	assert.ErrorIs(t, srv.Start(context.Background(), nil), server.ErrNilHandler)

	bad := server.New("256.0.0.1:bad")
	assert.Error(t, bad.Start(context.Background(), hello()))
}

func TestStopWhenNotRunning(t *testing.T) {
	t.Parallel()
	assert.NoError(t, server.New(":0").Stop())
}

func TestAddrBeforeStart(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ":9999", server.New(":9999").Addr())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("creates server from config with defaults", func(t *testing.T) {
		t.Parallel()
		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, ":8080", srv.Addr())
	})

	t.Run("allows overriding config values with options", func(t *testing.T) {
		t.Parallel()
		cfg := server.Config{
			Addr:            ":9000",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxHeaderBytes:  2 << 20,
		}
		srv, err := server.NewFromConfig(cfg, server.WithShutdownTimeout(10*time.Second))
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("fails without address", func(t *testing.T) {
		t.Parallel()
		_, err := server.NewFromConfig(server.Config{ReadTimeout: 10 * time.Second})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("fails with unreadable tls files", func(t *testing.T) {
		t.Parallel()
		cfg := server.DefaultConfig()
		cfg.TLSCertFile = "/nonexistent/cert.pem"
		cfg.TLSKeyFile = "/nonexistent/key.pem"
		_, err := server.NewFromConfig(cfg)
		assert.Error(t, err)
	})

	t.Run("fails with half tls config", func(t *testing.T) {
		t.Parallel()
		cfg := server.DefaultConfig()
		cfg.TLSCertFile = "/some/cert.pem"
		_, err := server.NewFromConfig(cfg)
		assert.ErrorIs(t, err, server.ErrIncompleteTLS)
	})
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	opts, err := server.DefaultConfig().Options()
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	opts, err = server.Config{Addr: ":1"}.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)
}
