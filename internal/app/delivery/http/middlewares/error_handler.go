package middlewares

import (
	"net/http"

	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"
	"lisagent-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler converts panics into a clean 500 response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.Log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.BuildNewCustomError(
					nil,
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					"Recovered from panic in HTTP handler",
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
