package aggregating

import (
	"sort"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// RevenueByRegion agrega receita, contagem de vendas e ticket médio por região
// do cliente. Venda com customer_id não resolvível não pertence a região
// nenhuma e fica de fora.
func RevenueByRegion(sales []domain.Sale, customersByID map[int]*domain.Customer) map[string]*domain.RegionRevenue {
	byRegion := make(map[string]*domain.RegionRevenue)

	for _, sale := range sales {
		customer, ok := customersByID[sale.CustomerID]
		if !ok {
			continue
		}

		region, ok := byRegion[customer.Region]
		if !ok {
			region = &domain.RegionRevenue{}
			byRegion[customer.Region] = region
		}

		region.TotalRevenue += sale.TotalAmount
		region.TotalSales++
	}

	for _, region := range byRegion {
		region.AvgOrderValue = utils.RoundWithTwoDecimalPlace(
			region.TotalRevenue / float64(region.TotalSales))
		region.TotalRevenue = utils.RoundWithTwoDecimalPlace(region.TotalRevenue)
	}

	return byRegion
}

// SalesByRegion reapresenta o agregado regional como a série ordenada que os
// gráficos do dashboard consomem: receita decrescente, empate resolvido pelo
// nome da região.
func SalesByRegion(sales []domain.Sale, customersByID map[int]*domain.Customer) []*domain.RegionChartData {
	byRegion := RevenueByRegion(sales, customersByID)

	chart := make([]*domain.RegionChartData, 0, len(byRegion))
	for name, region := range byRegion {
		chart = append(chart, &domain.RegionChartData{
			Region:        name,
			TotalRevenue:  region.TotalRevenue,
			TotalSales:    region.TotalSales,
			AvgOrderValue: region.AvgOrderValue,
		})
	}

	sort.Slice(chart, func(i, j int) bool {
		if chart[i].TotalRevenue != chart[j].TotalRevenue {
			return chart[i].TotalRevenue > chart[j].TotalRevenue
		}
		return chart[i].Region < chart[j].Region
	})

	return chart
}
