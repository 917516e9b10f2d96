package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter.go -package=mocks

// Reporter monta os payloads do dashboard a partir dos dados de vendas
// carregados pelo loader. Toda a agregação é transformação direta e sem
// estado da coleção carregada.
type Reporter interface {
	// GetDashboard retorna o payload completo da página: KPIs, os cinco
	// gráficos fixos e as opções de categoria do gráfico filtrável
	GetDashboard(ctx context.Context) (*domain.DashboardResponse, error)

	// RefreshDashboard força a atualização do cache (controle manual de
	// refresh da página) e retorna o payload recém-carregado
	RefreshDashboard(ctx context.Context) (*domain.DashboardResponse, error)

	// GetKpis retorna apenas a linha de indicadores
	GetKpis(ctx context.Context) (*domain.KpiResponse, error)

	// GetCategories retorna as categorias de produto distintas, ordenadas
	GetCategories(ctx context.Context) (*domain.CategoriesResponse, error)

	// Painéis de gráfico individuais
	GetRevenueByCategory(ctx context.Context) (*domain.CategoryRevenueChart, error)
	GetSalesTrend(ctx context.Context) (*domain.SalesTrendChart, error)
	GetChannelPerformance(ctx context.Context) (*domain.ChannelPerformanceChart, error)
	GetTopSalesReps(ctx context.Context) (*domain.TopSalesRepsChart, error)
	GetRevenueByRegion(ctx context.Context) (*domain.RegionRevenueChart, error)

	// GetCategoryTrend retorna a tendência de vendas da categoria selecionada
	GetCategoryTrend(ctx context.Context, category string) (*domain.CategoryTrendResponse, error)
}
