package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCacheRefresh = "refresh"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CacheRefreshService *scheduler.CacheRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCacheRefresh:
			if services.CacheRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do cache não disponível", nil)
				return
			}
			services.CacheRefreshService.TriggerManualRefresh()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: refresh", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("cron: erro ao codificar resposta")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.CacheRefreshService != nil {
			status["cache_refresh"] = services.CacheRefreshService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: erro ao codificar resposta")
		}
	}
}
