package handler

import (
	"net/http"

	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
	"github.com/advisorhub/revenue-engine/pkg/log"
)

const CronJobTypeCacheHealth = "cache-health"

// CacheHealthChecker é o job agendado de verificação do backend de cache
type CacheHealthChecker interface {
	TriggerManualCheck()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	CacheHealth CacheHealthChecker
}

// RunCacheHealthCheck dispara a verificação de saúde do cache fora do agendamento
func RunCacheHealthCheck(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.CacheHealth == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Verificação de saúde do cache não disponível", nil)
			return
		}

		log.ForContext(r.Context()).Info("Verificação de saúde do cache solicitada manualmente")
		services.CacheHealth.TriggerManualCheck()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    CronJobTypeCacheHealth,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CacheHealth != nil {
			status[CronJobTypeCacheHealth] = services.CacheHealth.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
