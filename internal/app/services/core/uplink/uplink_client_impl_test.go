package uplink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(ctx context.Context, message string) {
	n.messages = append(n.messages, message)
}

func newTestClient(notifier contracts.NotifierService) contracts.UplinkClient {
	return NewUplinkClient(zap.NewNop(), &config.InternalConfig{
		Uplink: config.Uplink{TimeoutInSeconds: 2},
	}, notifier)
}

func samplePayload() contracts.UplinkPayload {
	return contracts.UplinkPayload{
		VialID:     "UA01-555555",
		TestType:   "SARS",
		Results:    "negative",
		SerialNo:   "29000021",
		ResultTime: "20201104150102",
	}
}

func TestDeliver(t *testing.T) {
	t.Run("Status 200 Is Uploaded", func(t *testing.T) {
		var receivedKey string
		var receivedPayload contracts.UplinkPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedKey = r.Header.Get(constvars.HeaderAPIKey)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&receivedPayload))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		client := newTestClient(notifier)

		outcome := client.Deliver(context.Background(), samplePayload(), contracts.UplinkEndpoint{
			URL:    server.URL,
			APIKey: "secret-key",
		}, false)

		assert.Equal(t, contracts.OutcomeUploaded, outcome)
		assert.Equal(t, "secret-key", receivedKey)
		assert.Equal(t, "UA01-555555", receivedPayload.VialID)
		assert.Empty(t, notifier.messages)
	})

	t.Run("Non-200 Status Is Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		client := newTestClient(notifier)

		outcome := client.Deliver(context.Background(), samplePayload(), contracts.UplinkEndpoint{URL: server.URL}, false)

		assert.Equal(t, contracts.OutcomeError, outcome)
		require.Len(t, notifier.messages, 1)
		assert.Equal(t, "@channel ERROR Detected!", notifier.messages[0])
	})

	t.Run("Server Error Is Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		client := newTestClient(notifier)

		outcome := client.Deliver(context.Background(), samplePayload(), contracts.UplinkEndpoint{URL: server.URL}, false)
		assert.Equal(t, contracts.OutcomeError, outcome)
	})

	t.Run("Connection Failure Is Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		notifier := &recordingNotifier{}
		client := newTestClient(notifier)

		outcome := client.Deliver(context.Background(), samplePayload(), contracts.UplinkEndpoint{URL: server.URL}, false)

		assert.Equal(t, contracts.OutcomeError, outcome)
		require.Len(t, notifier.messages, 1)
	})

	t.Run("Disabled Uplink Skips Without Contact", func(t *testing.T) {
		contacted := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contacted = true
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		client := newTestClient(notifier)

		outcome := client.Deliver(context.Background(), samplePayload(), contracts.UplinkEndpoint{URL: server.URL}, true)

		assert.Equal(t, contracts.OutcomeSkippedByConfig, outcome)
		assert.False(t, contacted)
		assert.Empty(t, notifier.messages)
	})
}

func TestCategorizeTransportError(t *testing.T) {
	assert.Equal(t, "timeout", categorizeTransportError(context.DeadlineExceeded))
	assert.Equal(t, "unknown transport error", categorizeTransportError(assert.AnError))
}
