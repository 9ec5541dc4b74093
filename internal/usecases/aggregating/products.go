package aggregating

import (
	"sort"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// TopProducts agrega as vendas por produto e ordena por receita decrescente.
// A ordenação é estável: produtos empatados preservam a ordem da primeira
// venda de cada um. Venda com product_id não resolvível fica de fora.
// O corte de limit é responsabilidade de quem chama.
func TopProducts(sales []domain.Sale, productsByID map[int]*domain.Product) []*domain.TopProduct {
	byProduct := make(map[int]*domain.TopProduct)
	ordered := make([]*domain.TopProduct, 0)

	for _, sale := range sales {
		product, ok := productsByID[sale.ProductID]
		if !ok {
			continue
		}

		top, ok := byProduct[sale.ProductID]
		if !ok {
			top = &domain.TopProduct{
				ProductID: product.ID,
				Name:      product.Name,
				Category:  product.Category,
			}
			byProduct[sale.ProductID] = top
			ordered = append(ordered, top)
		}

		top.TotalQuantitySold += sale.Quantity
		top.TotalRevenue += sale.TotalAmount
		top.NumberOfSales++
	}

	for _, top := range ordered {
		top.TotalRevenue = utils.RoundWithTwoDecimalPlace(top.TotalRevenue)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalRevenue > ordered[j].TotalRevenue
	})

	return ordered
}

// CategoryPerformance agrega as vendas por categoria do produto joinado
func CategoryPerformance(sales []domain.Sale, productsByID map[int]*domain.Product) map[string]*domain.CategoryPerformance {
	byCategory := make(map[string]*domain.CategoryPerformance)

	for _, sale := range sales {
		product, ok := productsByID[sale.ProductID]
		if !ok {
			continue
		}

		perf, ok := byCategory[product.Category]
		if !ok {
			perf = &domain.CategoryPerformance{}
			byCategory[product.Category] = perf
		}

		perf.TotalRevenue += sale.TotalAmount
		perf.TotalQuantity += sale.Quantity
		perf.NumberOfSales++
	}

	for _, perf := range byCategory {
		perf.AvgOrderValue = utils.RoundWithTwoDecimalPlace(
			perf.TotalRevenue / float64(perf.NumberOfSales))
		perf.TotalRevenue = utils.RoundWithTwoDecimalPlace(perf.TotalRevenue)
	}

	return byCategory
}
