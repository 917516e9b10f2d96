package domain

import "time"

// CategoryRevenue é uma barra do gráfico de receita por categoria de produto.
type CategoryRevenue struct {
	ProductCategory string  `json:"product_category"`
	TotalValue      float64 `json:"total_value"`
}

// TrendPoint é um ponto da série temporal de vendas (receita agregada por data).
type TrendPoint struct {
	SaleDate   time.Time `json:"sale_date"`
	TotalValue float64   `json:"total_value"`
}

// ChannelPoint é um ponto do gráfico de dispersão valor total x lucro bruto,
// colorido pelo canal de venda. Cada registro de venda gera um ponto.
type ChannelPoint struct {
	SalesChannel string  `json:"sales_channel"`
	TotalValue   float64 `json:"total_value"`
	GrossProfit  float64 `json:"gross_profit"`
}

// RepQuantity é uma barra do gráfico de quantidade vendida por representante.
type RepQuantity struct {
	SalesRep     string `json:"sales_rep"`
	QuantitySold int    `json:"quantity_sold"`
}

// RegionRevenue é uma barra do gráfico de valor total por região de venda.
type RegionRevenue struct {
	SalesRegion string  `json:"sales_region"`
	TotalValue  float64 `json:"total_value"`
}
