package identityhttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVotingPower(t *testing.T) {
	t.Run("resolves weight by voter id", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"weight":1200}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		weight, err := client.VotingPower(context.Background(), "creator-1")
		require.NoError(t, err)

		assert.Equal(t, int64(1200), weight)
		assert.Equal(t, "/v1/voters/creator-1/weight", gotPath)
	})

	t.Run("escapes voter id", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"weight":0}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.VotingPower(context.Background(), "creator/1")
		require.NoError(t, err)

		assert.Equal(t, "/v1/voters/creator%2F1/weight", gotPath)
	})

	t.Run("non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.VotingPower(context.Background(), "creator-1")
		assert.Error(t, err)
	})
}

func TestTotalEligibleWeight(t *testing.T) {
	t.Run("resolves total weight", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total_weight":987654}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		total, err := client.TotalEligibleWeight(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(987654), total)
		assert.Equal(t, "/v1/voters/total-weight", gotPath)
	})

	t.Run("canceled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.TotalEligibleWeight(ctx)
		assert.Error(t, err)
	})
}
