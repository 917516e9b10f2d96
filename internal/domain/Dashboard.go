package domain

import "time"

// DataStatus carrega os metadados do cache junto com qualquer payload do dashboard.
// Warning é preenchido apenas quando o carregamento esgotou as tentativas de
// conexão e o resultado é a coleção vazia.
type DataStatus struct {
	RefreshedAt time.Time `json:"refreshed_at"`
	FromCache   bool      `json:"from_cache"`
	RecordCount int       `json:"record_count"`
	Warning     string    `json:"warning,omitempty"`
}

// DashboardResponse é o payload completo da página do dashboard: linha de KPIs,
// os cinco gráficos fixos e as opções de categoria para o gráfico filtrável.
type DashboardResponse struct {
	Status             DataStatus        `json:"status"`
	Kpis               *KpiSummary       `json:"kpis"`
	RevenueByCategory  []CategoryRevenue `json:"revenue_by_category"`
	SalesTrend         []TrendPoint      `json:"sales_trend"`
	ChannelPerformance []ChannelPoint    `json:"channel_performance"`
	TopSalesReps       []RepQuantity     `json:"top_sales_reps"`
	RevenueByRegion    []RegionRevenue   `json:"revenue_by_region"`
	Categories         []string          `json:"categories"`
}

// CategoryTrendResponse é o payload do gráfico de tendência filtrado por categoria.
type CategoryTrendResponse struct {
	Status          DataStatus   `json:"status"`
	ProductCategory string       `json:"product_category"`
	SalesTrend      []TrendPoint `json:"sales_trend"`
}

// KpiResponse é o payload do endpoint da linha de KPIs.
type KpiResponse struct {
	Status DataStatus  `json:"status"`
	Kpis   *KpiSummary `json:"kpis"`
}

// CategoriesResponse lista as categorias de produto distintas presentes nos
// dados carregados (opções do seletor do gráfico filtrável).
type CategoriesResponse struct {
	Status     DataStatus `json:"status"`
	Categories []string   `json:"categories"`
}

// Payloads dos painéis de gráfico individuais

type CategoryRevenueChart struct {
	Status DataStatus        `json:"status"`
	Items  []CategoryRevenue `json:"items"`
}

type SalesTrendChart struct {
	Status DataStatus   `json:"status"`
	Items  []TrendPoint `json:"items"`
}

type ChannelPerformanceChart struct {
	Status DataStatus     `json:"status"`
	Items  []ChannelPoint `json:"items"`
}

type TopSalesRepsChart struct {
	Status DataStatus    `json:"status"`
	Items  []RepQuantity `json:"items"`
}

type RegionRevenueChart struct {
	Status DataStatus      `json:"status"`
	Items  []RegionRevenue `json:"items"`
}
