package aggregating

import (
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// InventoryInsights identifica produtos em risco de ruptura
// (current_stock <= reorder_level, na ordem do inventário) e resume o giro de
// estoque por categoria. Registro de inventário com product_id não resolvível
// fica de fora.
func InventoryInsights(inventory []domain.Inventory, productsByID map[int]*domain.Product) *domain.InventoryInsights {
	insights := &domain.InventoryInsights{
		LowStockProducts:   make([]*domain.LowStockProduct, 0),
		TurnoverByCategory: make(map[string]*domain.CategoryTurnover),
	}

	type turnoverTotals struct {
		sum   float64
		min   float64
		max   float64
		count int
	}
	byCategory := make(map[string]*turnoverTotals)

	for _, item := range inventory {
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}

		if item.CurrentStock <= item.ReorderLevel {
			insights.LowStockProducts = append(insights.LowStockProducts, &domain.LowStockProduct{
				ProductID:    item.ProductID,
				Name:         product.Name,
				Category:     product.Category,
				CurrentStock: item.CurrentStock,
				ReorderLevel: item.ReorderLevel,
				TurnoverRate: item.TurnoverRate,
			})
		}

		totals, ok := byCategory[product.Category]
		if !ok {
			totals = &turnoverTotals{min: item.TurnoverRate, max: item.TurnoverRate}
			byCategory[product.Category] = totals
		}

		totals.sum += item.TurnoverRate
		totals.count++
		if item.TurnoverRate < totals.min {
			totals.min = item.TurnoverRate
		}
		if item.TurnoverRate > totals.max {
			totals.max = item.TurnoverRate
		}
	}

	insights.TotalProductsAtRisk = len(insights.LowStockProducts)

	for category, totals := range byCategory {
		insights.TurnoverByCategory[category] = &domain.CategoryTurnover{
			AvgTurnover: utils.RoundWithThreeDecimalPlace(totals.sum / float64(totals.count)),
			MinTurnover: totals.min,
			MaxTurnover: totals.max,
		}
	}

	return insights
}
