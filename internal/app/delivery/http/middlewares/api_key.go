package middlewares

import (
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/utils"
	"net/http"

	"medicenter-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// APIKeyAuth guards the ops endpoints. The configured key lives as a bcrypt
// hash, so a leaked config file does not leak the key.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.OpsAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		m.Log.Info("ops API key accepted",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}
