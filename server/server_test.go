package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealshop/accounts/server"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			return resp
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("server at %s never became reachable", url)
	return nil
}

func TestServer_ServesRequests(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx, okHandler())
	}()

	resp := waitForServer(t, "http://"+addr+"/")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, srv.Stop())
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestServer_StartTwice(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go srv.Start(ctx, okHandler()) //nolint:errcheck

	resp := waitForServer(t, "http://"+addr+"/")
	resp.Body.Close()

	err := srv.Start(ctx, okHandler())
	assert.ErrorIs(t, err, server.ErrAlreadyRunning)
}

func TestServer_ListenFailure(t *testing.T) {
	t.Parallel()

	// Occupy the port so the server cannot bind it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := server.New(ln.Addr().String())
	err = srv.Start(context.Background(), okHandler())
	assert.ErrorIs(t, err, server.ErrServerFailed)
}

func TestServer_StopWithoutStart(t *testing.T) {
	t.Parallel()

	srv := server.New(freeAddr(t))
	assert.NoError(t, srv.Stop())
}

func TestServer_RunGracefulShutdown(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := server.New(addr, server.WithShutdownTimeout(2*time.Second))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, okHandler())()
	}()

	resp := waitForServer(t, "http://"+addr+"/")
	resp.Body.Close()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()
		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		srv, err := server.NewFromConfig(server.Config{
			Addr:            fmt.Sprintf(":%d", 0),
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
			MaxHeaderBytes:  4096,
		})
		require.NoError(t, err)
		require.NotNil(t, srv)
	})
}
