package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lawaia-Dev/itemsync/internal/transport"
	"github.com/Lawaia-Dev/itemsync/pkg/errors"
)

func TestClientGet(t *testing.T) {
	t.Run("returns body on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[{"id":"a1"}]`))
		}))
		defer server.Close()

		client := transport.New()
		body, err := client.Get(context.Background(), server.URL, "metaforge")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a1"}]`, string(body))
	})

	t.Run("non-2xx status is an API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		defer server.Close()

		client := transport.New()
		_, err := client.Get(context.Background(), server.URL, "metaforge")
		require.Error(t, err)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "metaforge", apiErr.Source)
	})

	t.Run("connection failure is an API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close() // Shut down so the request fails to connect.

		client := transport.New()
		_, err := client.Get(context.Background(), server.URL, "metaforge")
		require.Error(t, err)

		var apiErr *errors.APIError
		assert.ErrorAs(t, err, &apiErr)
	})

	t.Run("context cancellation aborts request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := transport.New()
		_, err := client.Get(ctx, server.URL, "metaforge")
		assert.Error(t, err)
	})
}
