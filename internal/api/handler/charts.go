package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetRevenueByCategory retorna o gráfico de receita por categoria de produto
func GetRevenueByCategory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chart, err := service.GetRevenueByCategory(r.Context())
		if err != nil {
			logger.WithError(err).Error("charts: erro ao montar receita por categoria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico", nil)
			return
		}

		writeJSON(w, logger, chart)
	})
}

// GetSalesTrend retorna a série temporal de vendas
func GetSalesTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chart, err := service.GetSalesTrend(r.Context())
		if err != nil {
			logger.WithError(err).Error("charts: erro ao montar a série temporal de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico", nil)
			return
		}

		writeJSON(w, logger, chart)
	})
}

// GetChannelPerformance retorna o gráfico de dispersão valor total x lucro
// bruto por canal de venda
func GetChannelPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chart, err := service.GetChannelPerformance(r.Context())
		if err != nil {
			logger.WithError(err).Error("charts: erro ao montar desempenho por canal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico", nil)
			return
		}

		writeJSON(w, logger, chart)
	})
}

// GetTopSalesReps retorna o gráfico dos 10 representantes com maior quantidade vendida
func GetTopSalesReps(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chart, err := service.GetTopSalesReps(r.Context())
		if err != nil {
			logger.WithError(err).Error("charts: erro ao montar ranking de representantes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico", nil)
			return
		}

		writeJSON(w, logger, chart)
	})
}

// GetRevenueByRegion retorna o gráfico de valor total por região de venda
func GetRevenueByRegion(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chart, err := service.GetRevenueByRegion(r.Context())
		if err != nil {
			logger.WithError(err).Error("charts: erro ao montar receita por região")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico", nil)
			return
		}

		writeJSON(w, logger, chart)
	})
}

// GetCategoryTrend retorna a tendência de vendas da categoria selecionada
// pelo usuário (o painel parametrizado do dashboard)
func GetCategoryTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		category := r.URL.Query().Get("category")

		chart, err := service.GetCategoryTrend(r.Context(), category)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrCategoryRequired):
				logger.Warn("charts: parâmetro de categoria ausente")
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a categoria no parâmetro 'category'", nil)
			case errors.Is(err, reporting.ErrCategoryNotFound):
				logger.WithField("category", category).Warn("charts: categoria desconhecida")
				apiErrors.WriteError(w, apiErrors.ErrCategoryNotFound, "Categoria de produto não encontrada", nil)
			default:
				logger.WithError(err).WithField("category", category).
					Error("charts: erro ao montar tendência por categoria")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico", nil)
			}
			return
		}

		writeJSON(w, logger, chart)
	})
}
