package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireAPIKey(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-agent-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			AgentAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/republish", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/republish", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing API key")
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/republish", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("No Key Configured Disables Check", func(t *testing.T) {
		openMiddlewares := &Middlewares{
			Log:            logger,
			InternalConfig: &config.InternalConfig{},
		}

		req := httptest.NewRequest("POST", "/api/v1/republish", nil)

		rr := httptest.NewRecorder()
		handler := openMiddlewares.RequireAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "check should be disabled with no key configured")
	})
}
