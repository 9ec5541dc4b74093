// Package insighting gera recomendações de negócio determinísticas a partir
// das métricas agregadas. As regras rodam sempre na mesma ordem e os textos
// são templates fixos, então o mesmo snapshot produz sempre a mesma lista.
package insighting

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Categorias fixas dos insights, usadas também pelo filtro
const (
	CategoryRegional  = "Regional Analysis"
	CategoryProduct   = "Category Performance"
	CategorySegment   = "Customer Segmentation"
	CategoryInventory = "Inventory Management"
	CategoryRetention = "Customer Retention"
)

// Limiares das regras
const (
	regionLeadRatio    = 1.2
	regionHighImpact   = 1.5
	categoryShareLimit = 0.20
	churnRateLimit     = 0.5
	stockCriticalRatio = 0.5
)

// Generate roda as cinco regras na ordem fixa: regional, categoria, faixa
// etária, estoque, retenção. Regra cujo limiar não dispara não produz insight.
func Generate(metrics *domain.DashboardMetrics) []*domain.BusinessInsight {
	insights := make([]*domain.BusinessInsight, 0, 5)

	if insight := regionalInsight(metrics.RevenueByRegion); insight != nil {
		insights = append(insights, insight)
	}

	if insight := categoryInsight(metrics.CategoryPerformance); insight != nil {
		insights = append(insights, insight)
	}

	if insight := ageGroupInsight(metrics.AgeGroups); insight != nil {
		insights = append(insights, insight)
	}

	if insight := inventoryInsight(metrics.InventoryInsights); insight != nil {
		insights = append(insights, insight)
	}

	if insight := retentionInsight(metrics.CustomerSummary); insight != nil {
		insights = append(insights, insight)
	}

	return insights
}

// Filter aplica o filtro de categoria (substring case-insensitive) e o corte
// de limit, nessa ordem. Categoria vazia não filtra; limit zero não corta.
func Filter(insights []*domain.BusinessInsight, category string, limit int) []*domain.BusinessInsight {
	filtered := insights

	if category != "" {
		needle := strings.ToLower(category)
		filtered = make([]*domain.BusinessInsight, 0, len(insights))
		for _, insight := range insights {
			if strings.Contains(strings.ToLower(insight.Category), needle) {
				filtered = append(filtered, insight)
			}
		}
	}

	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	return filtered
}

// regionalInsight dispara quando a melhor região fatura mais de 20% acima da
// média regional. Margem de 50% ou mais eleva o impacto para High.
func regionalInsight(byRegion map[string]*domain.RegionRevenue) *domain.BusinessInsight {
	if len(byRegion) == 0 {
		return nil
	}

	var topRegion string
	var topRevenue, total float64
	for name, region := range byRegion {
		total += region.TotalRevenue
		if region.TotalRevenue > topRevenue || (region.TotalRevenue == topRevenue && name < topRegion) {
			topRegion = name
			topRevenue = region.TotalRevenue
		}
	}

	mean := total / float64(len(byRegion))
	if mean == 0 || topRevenue <= mean*regionLeadRatio {
		return nil
	}

	impact := domain.ImpactMedium
	if topRevenue >= mean*regionHighImpact {
		impact = domain.ImpactHigh
	}

	lead := (topRevenue/mean - 1) * 100

	return &domain.BusinessInsight{
		Title: "Strong Regional Performance",
		Description: fmt.Sprintf(
			"%s region generates $%s in revenue, %.1f%% above the regional average",
			topRegion, humanize.CommafWithDigits(topRevenue, 2), lead),
		Recommendation: fmt.Sprintf(
			"Consider expanding successful strategies from %s to underperforming regions",
			topRegion),
		Impact:   impact,
		Category: CategoryRegional,
	}
}

// categoryInsight dispara quando uma categoria concentra mais de 20% da receita
func categoryInsight(byCategory map[string]*domain.CategoryPerformance) *domain.BusinessInsight {
	if len(byCategory) == 0 {
		return nil
	}

	var topCategory string
	var topRevenue, total float64
	for name, perf := range byCategory {
		total += perf.TotalRevenue
		if perf.TotalRevenue > topRevenue || (perf.TotalRevenue == topRevenue && name < topCategory) {
			topCategory = name
			topRevenue = perf.TotalRevenue
		}
	}

	if total == 0 {
		return nil
	}

	share := topRevenue / total
	if share <= categoryShareLimit {
		return nil
	}

	return &domain.BusinessInsight{
		Title: "Category Dominance",
		Description: fmt.Sprintf(
			"%s accounts for %.1f%% of total revenue ($%s)",
			topCategory, share*100, humanize.CommafWithDigits(topRevenue, 2)),
		Recommendation: fmt.Sprintf(
			"Diversify the product portfolio to reduce dependency on %s",
			topCategory),
		Impact:   domain.ImpactHigh,
		Category: CategoryProduct,
	}
}

// ageGroupInsight destaca a faixa etária com maior gasto médio por cliente
func ageGroupInsight(groups map[string]*domain.AgeGroupAnalysis) *domain.BusinessInsight {
	if len(groups) == 0 {
		return nil
	}

	var topBand string
	var topSpent float64
	for band, analysis := range groups {
		if analysis.AvgSpent > topSpent || (analysis.AvgSpent == topSpent && band < topBand) {
			topBand = band
			topSpent = analysis.AvgSpent
		}
	}

	if topSpent == 0 {
		return nil
	}

	return &domain.BusinessInsight{
		Title: "High-Value Customer Segment",
		Description: fmt.Sprintf(
			"Customers aged %s spend an average of $%s each",
			topBand, humanize.CommafWithDigits(topSpent, 2)),
		Recommendation: fmt.Sprintf(
			"Develop targeted marketing campaigns for the %s age group", topBand),
		Impact:   domain.ImpactMedium,
		Category: CategorySegment,
	}
}

// inventoryInsight dispara quando há produto em risco de ruptura. Estoque
// zerado é Critical; estoque na metade do nível de reposição ou abaixo é High.
func inventoryInsight(inventory *domain.InventoryInsights) *domain.BusinessInsight {
	if inventory == nil || inventory.TotalProductsAtRisk == 0 {
		return nil
	}

	impact := domain.ImpactMedium
	for _, product := range inventory.LowStockProducts {
		if product.CurrentStock == 0 {
			impact = domain.ImpactCritical
			break
		}
		if product.ReorderLevel > 0 &&
			float64(product.CurrentStock)/float64(product.ReorderLevel) <= stockCriticalRatio {
			impact = domain.ImpactHigh
		}
	}

	return &domain.BusinessInsight{
		Title: "Inventory Risk Alert",
		Description: fmt.Sprintf(
			"%d products are at or below their reorder level",
			inventory.TotalProductsAtRisk),
		Recommendation: "Review reorder points and expedite purchase orders for low-stock items",
		Impact:         impact,
		Category:       CategoryInventory,
	}
}

// retentionInsight dispara quando mais da metade da base está sem compras
func retentionInsight(summary *domain.CustomerSummary) *domain.BusinessInsight {
	if summary == nil || summary.TotalCustomers == 0 || summary.ChurnRate <= churnRateLimit {
		return nil
	}

	return &domain.BusinessInsight{
		Title: "Customer Retention Concern",
		Description: fmt.Sprintf(
			"%.1f%% of customers have no recorded purchases",
			summary.ChurnRate*100),
		Recommendation: "Launch re-engagement campaigns targeting inactive customers",
		Impact:         domain.ImpactHigh,
		Category:       CategoryRetention,
	}
}
