//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/quote-service/internal/adapters/clients"
)

func TestClientConfig_Baseline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	cfg := modelClientConfig(server.URL)
	cfg.Retry.MaxAttempts = 1

	client, err := clients.New(cfg)
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/models")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientConfig_TimeoutIsHonored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := modelClientConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	cfg.Retry.MaxAttempts = 1

	client, err := clients.New(cfg)
	require.NoError(t, err)

	start := time.Now()
	_, err = client.Get(context.Background(), "/chat/completions")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 150*time.Millisecond)
}

func TestClientConfig_RetryBudget(t *testing.T) {
	tests := []struct {
		name          string
		maxAttempts   int
		serverFails   int32
		expectedCalls int32
		expectSuccess bool
	}{
		{"no retry needed", 1, 0, 1, true},
		{"one retry recovers", 2, 1, 2, true},
		{"budget exhausted", 2, 5, 2, false},
		{"several retries recover", 4, 3, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if atomic.AddInt32(&calls, 1) <= tt.serverFails {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			cfg := modelClientConfig(server.URL)
			cfg.Retry.MaxAttempts = tt.maxAttempts
			cfg.Retry.InitialInterval = 5 * time.Millisecond
			cfg.Circuit.MaxFailures = 100 // keep the breaker out of this test

			client, err := clients.New(cfg)
			require.NoError(t, err)

			resp, err := client.Get(context.Background(), "/chat/completions")

			if tt.expectSuccess {
				require.NoError(t, err)
				defer resp.Body.Close()
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			} else {
				require.Error(t, err)
			}

			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestClientConfig_BreakerThreshold(t *testing.T) {
	tests := []struct {
		name        string
		maxFailures int
		failures    int
		wantOpen    bool
	}{
		{"below threshold stays closed", 5, 2, false},
		{"opens exactly at threshold", 3, 3, true},
		{"stays open past threshold", 2, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			cfg := modelClientConfig(server.URL)
			cfg.Retry.MaxAttempts = 1
			cfg.Circuit.MaxFailures = tt.maxFailures
			cfg.Circuit.Timeout = time.Second

			client, err := clients.New(cfg)
			require.NoError(t, err)

			for range tt.failures {
				_, _ = client.Get(context.Background(), "/chat/completions")
			}

			if tt.wantOpen {
				assert.Equal(t, clients.StateOpen, client.CircuitState())
			} else {
				assert.Equal(t, clients.StateClosed, client.CircuitState())
			}
		})
	}
}

func TestClientConfig_AuthFuncAddsModelKey(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := modelClientConfig(server.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.AuthFunc = func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer sk-model-key")
	}

	client, err := clients.New(cfg)
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/chat/completions")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer sk-model-key", gotAuth)
}

func TestClientConfig_PathJoining(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{"leading slash", "/v1/chat/completions", "/v1/chat/completions"},
		{"no leading slash", "v1/chat/completions", "/v1/chat/completions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			cfg := modelClientConfig(server.URL)
			cfg.Retry.MaxAttempts = 1

			client, err := clients.New(cfg)
			require.NoError(t, err)

			resp, err := client.Get(context.Background(), tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestClientConfig_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *clients.Config
		wantErr string
	}{
		{"nil config", nil, "config is required"},
		{
			"missing service name",
			&clients.Config{BaseURL: "http://flags.internal", Timeout: time.Second},
			"service name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clients.New(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
