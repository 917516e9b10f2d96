package domain

import "time"

// SalesRecord representa uma transação de venda lida da tabela sales_data.
// Os registros são produzidos por um sistema externo e tratados como somente leitura.
type SalesRecord struct {
	ID              int64     `json:"id"`
	SaleDate        time.Time `json:"sale_date"`
	ProductCategory string    `json:"product_category"`
	SalesChannel    string    `json:"sales_channel"`
	SalesRep        string    `json:"sales_rep"`
	SalesRegion     string    `json:"sales_region"`
	QuantitySold    int       `json:"quantity_sold"`
	TotalValue      float64   `json:"total_value"`
	GrossProfit     float64   `json:"gross_profit"`
}
