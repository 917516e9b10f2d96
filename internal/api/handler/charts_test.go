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
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetRevenueByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetRevenueByCategory(gomock.Any()).Return(&domain.CategoryRevenueChart{
		Status: domain.DataStatus{RecordCount: 3},
		Items: []domain.CategoryRevenue{
			{ProductCategory: "Eletrônicos", TotalValue: 500},
			{ProductCategory: "Vestuário", TotalValue: 120},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/revenue-by-category", nil)
	rec := httptest.NewRecorder()

	handler.GetRevenueByCategory(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_category":"Eletrônicos"`)
	assert.Contains(t, rec.Body.String(), `"total_value":500`)
}

func TestGetSalesTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetSalesTrend(gomock.Any()).Return(&domain.SalesTrendChart{
		Status: domain.DataStatus{RecordCount: 2},
		Items: []domain.TrendPoint{
			{SaleDate: day, TotalValue: 300},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/sales-trend", nil)
	rec := httptest.NewRecorder()

	handler.GetSalesTrend(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sale_date":"2024-05-10T00:00:00Z"`)
}

func TestGetChannelPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetChannelPerformance(gomock.Any()).Return(&domain.ChannelPerformanceChart{
		Status: domain.DataStatus{RecordCount: 1},
		Items: []domain.ChannelPoint{
			{SalesChannel: "Online", TotalValue: 100, GrossProfit: 20},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/channel-performance", nil)
	rec := httptest.NewRecorder()

	handler.GetChannelPerformance(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sales_channel":"Online"`)
	assert.Contains(t, rec.Body.String(), `"gross_profit":20`)
}

func TestGetTopSalesReps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetTopSalesReps(gomock.Any()).Return(&domain.TopSalesRepsChart{
		Status: domain.DataStatus{RecordCount: 2},
		Items: []domain.RepQuantity{
			{SalesRep: "Ana", QuantitySold: 42},
			{SalesRep: "Bruno", QuantitySold: 17},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/top-sales-reps", nil)
	rec := httptest.NewRecorder()

	handler.GetTopSalesReps(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sales_rep":"Ana"`)
	assert.Contains(t, rec.Body.String(), `"quantity_sold":42`)
}

func TestGetRevenueByRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetRevenueByRegion(gomock.Any()).Return(&domain.RegionRevenueChart{
		Status: domain.DataStatus{RecordCount: 2},
		Items: []domain.RegionRevenue{
			{SalesRegion: "Sudeste", TotalValue: 900},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/revenue-by-region", nil)
	rec := httptest.NewRecorder()

	handler.GetRevenueByRegion(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sales_region":"Sudeste"`)
}

func TestGetCategoryTrend(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		url      string
		setup    func(reporter *mocks.MockReporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Categoria válida retorna a tendência filtrada",
			url:  "/v1/charts/category-trend?category=Eletrônicos",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().GetCategoryTrend(gomock.Any(), "Eletrônicos").
					Return(&domain.CategoryTrendResponse{
						Status:          domain.DataStatus{RecordCount: 2},
						ProductCategory: "Eletrônicos",
						SalesTrend: []domain.TrendPoint{
							{SaleDate: day, TotalValue: 200},
						},
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"product_category":"Eletrônicos"`)
			},
		},
		{
			name: "Categoria ausente responde 400 com código de validação",
			url:  "/v1/charts/category-trend",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().GetCategoryTrend(gomock.Any(), "").
					Return(nil, reporting.ErrCategoryRequired)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "VAL_002")
			},
		},
		{
			name: "Categoria desconhecida responde 404",
			url:  "/v1/charts/category-trend?category=Inexistente",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().GetCategoryTrend(gomock.Any(), "Inexistente").
					Return(nil, reporting.ErrCategoryNotFound)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, rec.Code)
				assert.Contains(t, rec.Body.String(), "DSH_001")
			},
		},
		{
			name: "Erro inesperado responde 500",
			url:  "/v1/charts/category-trend?category=Eletrônicos",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().GetCategoryTrend(gomock.Any(), "Eletrônicos").
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

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.GetCategoryTrend(reporter).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}
