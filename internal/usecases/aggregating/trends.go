package aggregating

import (
	"sort"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// MonthlyTrends agrega as vendas por mês (yyyy-mm), em ordem cronológica
// crescente. Venda com data curta demais para extrair o mês fica de fora.
func MonthlyTrends(sales []domain.Sale) []*domain.MonthlyTrend {
	byMonth := make(map[string]*domain.MonthlyTrend)

	for _, sale := range sales {
		yearMonth := utils.YearMonth(sale.Date)
		if yearMonth == "" {
			continue
		}

		trend, ok := byMonth[yearMonth]
		if !ok {
			trend = &domain.MonthlyTrend{YearMonth: yearMonth}
			byMonth[yearMonth] = trend
		}

		trend.Revenue += sale.TotalAmount
		trend.QuantitySold += sale.Quantity
		trend.NumberOfSales++
	}

	trends := make([]*domain.MonthlyTrend, 0, len(byMonth))
	for _, trend := range byMonth {
		trend.Revenue = utils.RoundWithTwoDecimalPlace(trend.Revenue)
		trends = append(trends, trend)
	}

	sort.Slice(trends, func(i, j int) bool {
		return trends[i].YearMonth < trends[j].YearMonth
	})

	return trends
}
