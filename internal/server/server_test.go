package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/medkeeper/internal/server/config"
	"github.com/iudanet/medkeeper/internal/server/handlers"
	"github.com/iudanet/medkeeper/internal/server/middleware"
	"github.com/iudanet/medkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/medkeeper/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "server.db")
	if mutate != nil {
		mutate(cfg)
	}

	store, err := sqlite.New(context.Background(), cfg.DBPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := New(cfg, testLogger(), store, "test")
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_RecordsFlow(t *testing.T) {
	srv := newTestServer(t, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/records", "application/json",
		strings.NewReader(`{"userId":3,"name":"Ibuprofen","expiry":"2027-05","clientRef":"ref-1"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	var created api.RecordResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Positive(t, created.ID)

	resp2, err := http.Get(ts.URL + "/records?userId=3")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var list []api.RecordResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ibuprofen", list[0].Name)
	assert.Equal(t, "ref-1", list[0].ClientRef)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/records/%d?userId=3", ts.URL, created.ID), nil)
	require.NoError(t, err)
	resp3, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp3.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp3.StatusCode)
}

func TestServer_Auth(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) { c.JWTSecret = "secret" })
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// health доступен без токена
	resp, err := http.Head(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/records?userId=5")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, _, err := handlers.GenerateAccessToken(JWTConfig(&config.Config{
		JWTSecret: "secret",
		TokenTTL:  config.Duration{Duration: time.Hour},
	}), 5)
	require.NoError(t, err)

	get := func(userID int64) int {
		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/records?userId=%d", ts.URL, userID), nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, get(5))
	assert.Equal(t, http.StatusForbidden, get(6))
}

func TestServer_RateLimit(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) {
		c.RateLimit = 2
		c.RateWindow = config.Duration{Duration: time.Hour}
	})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := http.Get(ts.URL + "/records?userId=1")
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) {
		c.ShutdownTimeout = config.Duration{Duration: time.Second}
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(url)
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_RunListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newTestServer(t, func(c *config.Config) { c.Addr = ln.Addr().String() })

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
