package domain

// KpiSummary agrega os indicadores exibidos na linha de KPIs do dashboard.
// GrossProfitMargin é expresso em percentual (0-100) com duas casas decimais.
type KpiSummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	AverageOrderValue   float64 `json:"average_order_value"`
	TotalQuantitySold   int     `json:"total_quantity_sold"`
	AverageQuantitySold float64 `json:"average_quantity_sold"`
	GrossProfitMargin   float64 `json:"gross_profit_margin"`
}
