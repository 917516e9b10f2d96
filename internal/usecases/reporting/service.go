package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// topSalesRepsLimit limita o gráfico de representantes aos 10 maiores volumes
const topSalesRepsLimit = 10

type Service struct {
	loader loading.Loader
}

func NewService(loader loading.Loader) Reporter {
	return &Service{
		loader: loader,
	}
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.DashboardResponse, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return buildDashboard(result), nil
}

func (s *Service) RefreshDashboard(ctx context.Context) (*domain.DashboardResponse, error) {
	result, err := s.loader.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	return buildDashboard(result), nil
}

func buildDashboard(result *loading.Result) *domain.DashboardResponse {
	records := result.Records

	return &domain.DashboardResponse{
		Status:             result.Status(),
		Kpis:               calculateKpis(records),
		RevenueByCategory:  revenueByCategory(records),
		SalesTrend:         salesTrend(records),
		ChannelPerformance: channelPerformance(records),
		TopSalesReps:       topSalesReps(records),
		RevenueByRegion:    revenueByRegion(records),
		Categories:         distinctCategories(records),
	}
}

func (s *Service) GetKpis(ctx context.Context) (*domain.KpiResponse, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.KpiResponse{
		Status: result.Status(),
		Kpis:   calculateKpis(result.Records),
	}, nil
}

func (s *Service) GetCategories(ctx context.Context) (*domain.CategoriesResponse, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.CategoriesResponse{
		Status:     result.Status(),
		Categories: distinctCategories(result.Records),
	}, nil
}

func (s *Service) GetRevenueByCategory(ctx context.Context) (*domain.CategoryRevenueChart, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.CategoryRevenueChart{
		Status: result.Status(),
		Items:  revenueByCategory(result.Records),
	}, nil
}

func (s *Service) GetSalesTrend(ctx context.Context) (*domain.SalesTrendChart, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SalesTrendChart{
		Status: result.Status(),
		Items:  salesTrend(result.Records),
	}, nil
}

func (s *Service) GetChannelPerformance(ctx context.Context) (*domain.ChannelPerformanceChart, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.ChannelPerformanceChart{
		Status: result.Status(),
		Items:  channelPerformance(result.Records),
	}, nil
}

func (s *Service) GetTopSalesReps(ctx context.Context) (*domain.TopSalesRepsChart, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.TopSalesRepsChart{
		Status: result.Status(),
		Items:  topSalesReps(result.Records),
	}, nil
}

func (s *Service) GetRevenueByRegion(ctx context.Context) (*domain.RegionRevenueChart, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.RegionRevenueChart{
		Status: result.Status(),
		Items:  revenueByRegion(result.Records),
	}, nil
}

func (s *Service) GetCategoryTrend(ctx context.Context, category string) (*domain.CategoryTrendResponse, error) {
	if category == "" {
		return nil, ErrCategoryRequired
	}

	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.SalesRecord, 0)
	for _, record := range result.Records {
		if record.ProductCategory == category {
			filtered = append(filtered, record)
		}
	}

	// Coleção vazia é um estado terminal válido do loader: nesse caso o
	// gráfico fica vazio em vez de rejeitar a categoria
	if len(filtered) == 0 && len(result.Records) > 0 {
		return nil, ErrCategoryNotFound
	}

	return &domain.CategoryTrendResponse{
		Status:          result.Status(),
		ProductCategory: category,
		SalesTrend:      salesTrend(filtered),
	}, nil
}

// calculateKpis calcula os indicadores da linha de KPIs. Médias sobre coleção
// vazia e margem sobre receita zero resultam em 0, nunca em divisão inválida.
func calculateKpis(records []domain.SalesRecord) *domain.KpiSummary {
	summary := &domain.KpiSummary{}

	var grossProfit float64
	for _, record := range records {
		summary.TotalRevenue += record.TotalValue
		summary.TotalQuantitySold += record.QuantitySold
		grossProfit += record.GrossProfit
	}

	if count := len(records); count > 0 {
		summary.AverageOrderValue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue / float64(count))
		summary.AverageQuantitySold = utils.RoundWithTwoDecimalPlace(float64(summary.TotalQuantitySold) / float64(count))
	}

	if summary.TotalRevenue != 0 {
		summary.GrossProfitMargin = utils.RoundWithTwoDecimalPlace(grossProfit / summary.TotalRevenue * 100)
	}

	return summary
}

func revenueByCategory(records []domain.SalesRecord) []domain.CategoryRevenue {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.ProductCategory] += record.TotalValue
	}

	items := make([]domain.CategoryRevenue, 0, len(totals))
	for category, total := range totals {
		items = append(items, domain.CategoryRevenue{
			ProductCategory: category,
			TotalValue:      total,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalValue != items[j].TotalValue {
			return items[i].TotalValue > items[j].TotalValue
		}
		return items[i].ProductCategory < items[j].ProductCategory
	})

	return items
}

func salesTrend(records []domain.SalesRecord) []domain.TrendPoint {
	totals := make(map[time.Time]float64)
	for _, record := range records {
		totals[dayOf(record.SaleDate)] += record.TotalValue
	}

	points := make([]domain.TrendPoint, 0, len(totals))
	for saleDate, total := range totals {
		points = append(points, domain.TrendPoint{
			SaleDate:   saleDate,
			TotalValue: total,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].SaleDate.Before(points[j].SaleDate)
	})

	return points
}

func channelPerformance(records []domain.SalesRecord) []domain.ChannelPoint {
	points := make([]domain.ChannelPoint, 0, len(records))
	for _, record := range records {
		points = append(points, domain.ChannelPoint{
			SalesChannel: record.SalesChannel,
			TotalValue:   record.TotalValue,
			GrossProfit:  record.GrossProfit,
		})
	}

	return points
}

func topSalesReps(records []domain.SalesRecord) []domain.RepQuantity {
	totals := make(map[string]int)
	for _, record := range records {
		totals[record.SalesRep] += record.QuantitySold
	}

	items := make([]domain.RepQuantity, 0, len(totals))
	for rep, quantity := range totals {
		items = append(items, domain.RepQuantity{
			SalesRep:     rep,
			QuantitySold: quantity,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].QuantitySold != items[j].QuantitySold {
			return items[i].QuantitySold > items[j].QuantitySold
		}
		return items[i].SalesRep < items[j].SalesRep
	})

	if len(items) > topSalesRepsLimit {
		items = items[:topSalesRepsLimit]
	}

	return items
}

func revenueByRegion(records []domain.SalesRecord) []domain.RegionRevenue {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.SalesRegion] += record.TotalValue
	}

	items := make([]domain.RegionRevenue, 0, len(totals))
	for region, total := range totals {
		items = append(items, domain.RegionRevenue{
			SalesRegion: region,
			TotalValue:  total,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalValue != items[j].TotalValue {
			return items[i].TotalValue > items[j].TotalValue
		}
		return items[i].SalesRegion < items[j].SalesRegion
	})

	return items
}

func distinctCategories(records []domain.SalesRecord) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, record := range records {
		if _, ok := seen[record.ProductCategory]; ok {
			continue
		}
		seen[record.ProductCategory] = struct{}{}
		categories = append(categories, record.ProductCategory)
	}

	sort.Strings(categories)
	return categories
}

// dayOf normaliza o timestamp da venda para a data (agrupamento da série temporal)
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
