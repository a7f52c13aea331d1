package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler responde 200 enquanto a API estiver de pé. O estado do
// cache é informativo: um cache degradado não derruba as leituras.
func HealthcheckHandler(cacheHealth CacheHealthChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if cacheHealth != nil {
			status := cacheHealth.GetStatus()
			body["cache_backend"] = status["cache_backend"]
			body["cache_healthy"] = status["healthy"]
		}
		writeJSON(w, r, http.StatusOK, body)
	})
}
