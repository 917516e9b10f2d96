package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	salesDataTable = "sales_data sd"
)

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record.go -package=mocks

// SalesRecordRepository lê a tabela sales_data. A tabela é alimentada por um
// sistema externo; não existe caminho de escrita neste serviço.
type SalesRecordRepository interface {
	ListAll(ctx context.Context) ([]domain.SalesRecord, error)
}

type salesRecordRepository struct {
	conn postgres.Conn
}

func NewSalesRecordRepository(conn postgres.Conn) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func (r *salesRecordRepository) ListAll(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("sd.id, sd.sale_date, sd.product_category, sd.sales_channel, sd.sales_rep, sd.sales_region, sd.quantity_sold, sd.total_value, sd.gross_profit").
		From(salesDataTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var record domain.SalesRecord
		if err := rows.Scan(
			&record.ID,
			&record.SaleDate,
			&record.ProductCategory,
			&record.SalesChannel,
			&record.SalesRep,
			&record.SalesRegion,
			&record.QuantitySold,
			&record.TotalValue,
			&record.GrossProfit,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
