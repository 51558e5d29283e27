package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"top-sales-tracker/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	logger.InitLogger("test")
}

func TestHTTPClient_GetBuildsURLHeadersAndQuery(t *testing.T) {
	var gotPath, gotQuery, gotAccept, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotKey = r.Header.Get("X-API-KEY")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL+"/"))
	resp, err := client.Get(context.Background(), "v1/items/",
		WithQueryParam("chain", "eth-main"),
		WithHeader("X-API-KEY", "secret"),
	)
	require.NoError(t, err)

	var body struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.ProcessJSONResponse(resp, &body))

	assert.True(t, body.OK)
	assert.Equal(t, "/v1/items/", gotPath)
	assert.Equal(t, "chain=eth-main", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "secret", gotKey)
}

func TestHTTPClient_ErrorStatusReturnsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad key"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL))
	resp, err := client.Get(context.Background(), "/x")
	require.Error(t, err)
	require.NotNil(t, resp)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, http.MethodGet, httpErr.Method)
	assert.Contains(t, httpErr.Body, "bad key")

	// The body stays readable for the caller
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	assert.Contains(t, string(body), "bad key")
}

func TestHTTPClient_ErrorStatusIsSingleShot(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(status)
		}))

		client := NewHTTPClient(WithBaseURL(server.URL))
		_, err := client.Get(context.Background(), "/")
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "status %d", status)
		server.Close()
	}
}

func TestHTTPClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHTTPClient(WithBaseURL(url))
	resp, err := client.Get(context.Background(), "/")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http request failed")

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestHTTPClient_InvalidPathWithoutBaseURL(t *testing.T) {
	client := NewHTTPClient()
	_, err := client.Get(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path used without base URL")
}

func TestHTTPClient_StatsCollector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	stats := NewStatsCollector()
	client := NewHTTPClient(WithBaseURL(server.URL), WithMetricsCollector(stats))

	resp, err := client.Get(context.Background(), "/ok")
	require.NoError(t, err)
	resp.Body.Close()
	_, err = client.Get(context.Background(), "/fail")
	require.Error(t, err)

	snapshot := stats.Snapshot()
	assert.Equal(t, int64(2), snapshot.Requests)
	assert.Equal(t, int64(1), snapshot.Errors)
	assert.Equal(t, http.StatusInternalServerError, snapshot.LastStatus)
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })
	return logs
}

func TestHTTPClient_LogsEachRequestOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logs := observeLogs(t)
	client := NewHTTPClient(WithBaseURL(server.URL))
	ctx := logger.ContextWithCorrelationID(context.Background(), "corr-1")

	resp, err := client.Get(ctx, "/ok")
	require.NoError(t, err)
	resp.Body.Close()

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "corr-1", entries[0].ContextMap()["correlation_id"])

	_, err = client.Get(ctx, "/fail")
	require.Error(t, err)

	entries = logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), entries[0].ContextMap()["status"])
}

func TestHTTPClient_RedactsSensitiveHeaders(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
	}))
	defer server.Close()

	logs := observeLogs(t)
	client := NewHTTPClient(
		WithBaseURL(server.URL),
		WithSensitiveHeader("x-api-key"),
	)
	resp, err := client.Get(context.Background(), "/", WithHeader("X-API-KEY", "secret"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "secret", gotKey, "redaction must not touch the outgoing request")

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	logged, ok := entries[0].ContextMap()["headers"].(http.Header)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", logged.Get("X-API-KEY"))

	header := http.Header{}
	header.Set("X-API-KEY", "secret")
	header.Set("Accept", "application/json")

	redacted := client.redactHeaders(header)
	assert.Equal(t, "[REDACTED]", redacted.Get("X-API-KEY"))
	assert.Equal(t, "application/json", redacted.Get("Accept"))
	assert.Equal(t, "secret", header.Get("X-API-KEY"))
}
