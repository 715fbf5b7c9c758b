package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/backend/internal/llm"
)

func TestOllamaProvider_GenerateReply(t *testing.T) {
	t.Run("Sends the full history and returns the trimmed reply", func(t *testing.T) {
		var capturedPath string
		var capturedBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"  Hi there!\n"},"done":true}`))
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL, "llama3")
		reply, err := provider.GenerateReply(context.Background(), []llm.Message{
			{Role: "user", Content: "Hello"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Hi there!", reply)
		assert.Equal(t, "/api/chat", capturedPath)
		assert.Equal(t, "llama3", capturedBody["model"])
		assert.Equal(t, false, capturedBody["stream"])
		messages, ok := capturedBody["messages"].([]interface{})
		require.True(t, ok)
		require.Len(t, messages, 1)
	})

	t.Run("Non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL, "llama3")
		_, err := provider.GenerateReply(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("Context deadline aborts the call", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		provider := llm.NewOllamaProvider(server.URL, "llama3")
		_, err := provider.GenerateReply(ctx, []llm.Message{{Role: "user", Content: "Hello"}})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Malformed response body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL, "llama3")
		_, err := provider.GenerateReply(context.Background(), nil)

		assert.Error(t, err)
	})
}
