package middlewares

import (
	"net/http"

	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"
	"lisagent-service/internal/pkg/utils"
)

// RequireAPIKey guards the management endpoints. With no key configured the
// check is disabled so local single-operator deployments stay zero-config.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configuredKey := m.InternalConfig.App.AgentAPIKey
		if configuredKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}
		if apiKey != configuredKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
