package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/config"
)

func TestWhatsAppNotifier_Send(t *testing.T) {
	t.Run("posts the message to the gateway", func(t *testing.T) {
		var got sendRequest
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		n := NewWhatsAppNotifier(config.WhatsAppConfig{
			Endpoint:   server.URL,
			APIKey:     "key",
			AdminPhone: "+972590000000",
			Timeout:    time.Second,
		}, zap.NewNop())

		err := n.Send(context.Background(), "payment recorded")
		require.NoError(t, err)
		assert.Equal(t, "payment recorded", got.Message)
		assert.Equal(t, "+972590000000", got.Phone)
		assert.Equal(t, "Bearer key", gotAuth)
	})

	t.Run("gateway errors surface to the caller", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		n := NewWhatsAppNotifier(config.WhatsAppConfig{
			Endpoint: server.URL,
			Timeout:  time.Second,
		}, zap.NewNop())

		assert.Error(t, n.Send(context.Background(), "hello"))
	})

	t.Run("unconfigured endpoint is a no-op", func(t *testing.T) {
		n := NewWhatsAppNotifier(config.WhatsAppConfig{Timeout: time.Second}, zap.NewNop())
		assert.NoError(t, n.Send(context.Background(), "hello"))
	})
}
