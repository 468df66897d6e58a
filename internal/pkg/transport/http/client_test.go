package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("tries once with the default timeout", func(t *testing.T) {
		client := NewClient()

		assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
		assert.Zero(t, client.RetryMax)
	})

	t.Run("ignores a non-positive timeout", func(t *testing.T) {
		assert.Equal(t, DefaultTimeout, NewClient(WithTimeout(0)).HTTPClient.Timeout)
		assert.Equal(t, time.Second, NewClient(WithTimeout(time.Second)).HTTPClient.Timeout)
	})

	t.Run("retries server errors when enabled", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		client := NewClient(WithRetries(2, time.Millisecond, 2*time.Millisecond))
		body, status, err := GetBody(t.Context(), client, server.URL)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok", string(body))
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("sets the user agent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(r.UserAgent()))
		}))
		defer server.Close()

		body, _, err := GetBody(t.Context(), NewClient(WithUserAgent("chainsentry/test")), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "chainsentry/test", string(body))
	})
}

func TestGetBody(t *testing.T) {
	t.Run("returns the body and status of a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "56", r.URL.Query().Get("chainid"))
			w.Write([]byte(`{"status":"1"}`))
		}))
		defer server.Close()

		body, status, err := GetBody(t.Context(), NewClient(), server.URL+"?chainid=56")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"status":"1"}`, string(body))
	})

	t.Run("hands back the last error response once retries run out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		client := NewClient(WithRetries(1, time.Millisecond, time.Millisecond))
		body, status, err := GetBody(t.Context(), client, server.URL)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, status)
		assert.Equal(t, "bad gateway", string(body))
	})

	t.Run("fails when the server is unreachable", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()

		_, _, err := GetBody(t.Context(), NewClient(WithTimeout(time.Second)), server.URL)

		assert.Error(t, err)
	})
}
