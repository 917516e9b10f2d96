package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	refreshedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(reporter *mocks.MockReporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Retorna o payload completo com status 200",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().GetDashboard(gomock.Any()).Return(&domain.DashboardResponse{
					Status: domain.DataStatus{
						RefreshedAt: refreshedAt,
						RecordCount: 2,
					},
					Kpis: &domain.KpiSummary{TotalRevenue: 300},
					RevenueByCategory: []domain.CategoryRevenue{
						{ProductCategory: "Eletrônicos", TotalValue: 200},
						{ProductCategory: "Vestuário", TotalValue: 100},
					},
					Categories: []string{"Eletrônicos", "Vestuário"},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				body := rec.Body.String()
				assert.Contains(t, body, `"record_count":2`)
				assert.Contains(t, body, `"total_revenue":300`)
				assert.Contains(t, body, "Eletrônicos")
			},
		},
		{
			name: "Coleção vazia com aviso após esgotar as tentativas ainda responde 200",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().GetDashboard(gomock.Any()).Return(&domain.DashboardResponse{
					Status: domain.DataStatus{
						RefreshedAt: refreshedAt,
						Warning:     "unable to connect to the database after multiple attempts",
					},
					Kpis: &domain.KpiSummary{},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "unable to connect to the database after multiple attempts")
			},
		},
		{
			name: "Erro do serviço responde 500 com código de banco",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().GetDashboard(gomock.Any()).
					Return(nil, errors.New("sintaxe inválida na query"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), "SRV_002")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := mocks.NewMockReporter(ctrl)
			tt.setup(reporter)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
			rec := httptest.NewRecorder()

			handler.GetDashboard(reporter).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestRefreshDashboard(t *testing.T) {
	t.Run("Dispara uma nova busca e retorna o payload atualizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().RefreshDashboard(gomock.Any()).Return(&domain.DashboardResponse{
			Status: domain.DataStatus{RecordCount: 5, FromCache: false},
			Kpis:   &domain.KpiSummary{},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)
		rec := httptest.NewRecorder()

		handler.RefreshDashboard(reporter).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"record_count":5`)
		assert.Contains(t, rec.Body.String(), `"from_cache":false`)
	})

	t.Run("Erro durante o refresh responde 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().RefreshDashboard(gomock.Any()).
			Return(nil, errors.New("permissão negada na tabela"))

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)
		rec := httptest.NewRecorder()

		handler.RefreshDashboard(reporter).ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_002")
	})
}

func TestGetKpis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetKpis(gomock.Any()).Return(&domain.KpiResponse{
		Status: domain.DataStatus{RecordCount: 2},
		Kpis: &domain.KpiSummary{
			TotalRevenue:        300,
			AverageOrderValue:   150,
			TotalQuantitySold:   5,
			AverageQuantitySold: 2.5,
			GrossProfitMargin:   23.33,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/kpis", nil)
	rec := httptest.NewRecorder()

	handler.GetKpis(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"average_order_value":150`)
	assert.Contains(t, rec.Body.String(), `"gross_profit_margin":23.33`)
}

func TestGetCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetCategories(gomock.Any()).Return(&domain.CategoriesResponse{
		Status:     domain.DataStatus{RecordCount: 3},
		Categories: []string{"Alimentos", "Eletrônicos", "Vestuário"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	rec := httptest.NewRecorder()

	handler.GetCategories(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"categories":["Alimentos","Eletrônicos","Vestuário"]`)
}
