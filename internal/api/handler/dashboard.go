package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboard retorna o payload completo da página do dashboard
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dashboard, err := service.GetDashboard(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar o payload do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar os dados de vendas", nil)
			return
		}

		if dashboard.Status.Warning != "" {
			logger.WithField("warning", dashboard.Status.Warning).
				Warn("dashboard: payload montado com coleção vazia após esgotar as tentativas de conexão")
		}

		writeJSON(w, logger, dashboard)
	})
}

// RefreshDashboard é o controle manual de refresh da página: força uma nova
// busca no banco ignorando a janela de TTL e retorna o payload atualizado
func RefreshDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		refreshID, err := utils.GenerateID()
		if err == nil {
			logger = logger.WithField("refresh_id", refreshID)
		}

		logger.Info("dashboard: refresh manual solicitado")

		dashboard, err := service.RefreshDashboard(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao atualizar os dados de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar os dados de vendas", nil)
			return
		}

		logger.WithField("record_count", dashboard.Status.RecordCount).
			Info("dashboard: refresh manual concluído")

		writeJSON(w, logger, dashboard)
	})
}

// GetKpis retorna apenas a linha de indicadores do dashboard
func GetKpis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kpis, err := service.GetKpis(r.Context())
		if err != nil {
			logger.WithError(err).Error("kpis: erro ao calcular os indicadores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular os indicadores", nil)
			return
		}

		writeJSON(w, logger, kpis)
	})
}

// GetCategories retorna as opções do seletor de categoria do gráfico filtrável
func GetCategories(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, err := service.GetCategories(r.Context())
		if err != nil {
			logger.WithError(err).Error("categories: erro ao listar categorias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar categorias", nil)
			return
		}

		writeJSON(w, logger, categories)
	})
}

// writeJSON codifica o payload de resposta com o Content-Type adequado
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
