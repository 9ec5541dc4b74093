package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func metricsFixture() *domain.DashboardMetrics {
	return &domain.DashboardMetrics{
		RevenueByRegion: map[string]*domain.RegionRevenue{
			"North": {TotalRevenue: 1550, TotalSales: 2},
			"South": {TotalRevenue: 100, TotalSales: 1},
		},
		CategoryPerformance: map[string]*domain.CategoryPerformance{
			"Electronics": {TotalRevenue: 1700},
			"Food":        {TotalRevenue: 150},
		},
		AgeGroups: map[string]*domain.AgeGroupAnalysis{
			"26-35": {AvgSpent: 1550},
			"18-25": {AvgSpent: 100},
		},
		InventoryInsights: &domain.InventoryInsights{
			TotalProductsAtRisk: 1,
			LowStockProducts: []*domain.LowStockProduct{
				{ProductID: 1, CurrentStock: 5, ReorderLevel: 10},
			},
		},
		CustomerSummary: &domain.CustomerSummary{
			TotalCustomers: 3,
			ChurnRate:      0.333,
		},
	}
}

func TestGenerateOrderAndContent(t *testing.T) {
	insights := Generate(metricsFixture())

	// Regional, categoria, faixa etária e estoque disparam; retenção (0.333) não
	require.Len(t, insights, 4)

	assert.Equal(t, "Strong Regional Performance", insights[0].Title)
	assert.Equal(t, CategoryRegional, insights[0].Category)
	assert.Contains(t, insights[0].Description, "North")
	assert.Contains(t, insights[0].Description, "1,550")

	assert.Equal(t, "Category Dominance", insights[1].Title)
	assert.Equal(t, domain.ImpactHigh, insights[1].Impact)
	assert.Contains(t, insights[1].Description, "Electronics")

	assert.Equal(t, "High-Value Customer Segment", insights[2].Title)
	assert.Equal(t, domain.ImpactMedium, insights[2].Impact)
	assert.Contains(t, insights[2].Description, "26-35")

	assert.Equal(t, "Inventory Risk Alert", insights[3].Title)
	assert.Equal(t, CategoryInventory, insights[3].Category)
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(metricsFixture())
	second := Generate(metricsFixture())

	assert.Equal(t, first, second)
}

func TestGenerateEmptyMetrics(t *testing.T) {
	insights := Generate(&domain.DashboardMetrics{})
	assert.Empty(t, insights)
}

func TestRegionalInsightThreshold(t *testing.T) {
	tests := []struct {
		name           string
		byRegion       map[string]*domain.RegionRevenue
		expectInsight  bool
		expectedImpact string
	}{
		{
			name: "Região líder 20% acima da média não dispara (limite é exclusivo)",
			byRegion: map[string]*domain.RegionRevenue{
				"A": {TotalRevenue: 120},
				"B": {TotalRevenue: 80},
			},
			expectInsight: false,
		},
		{
			name: "Margem entre 20% e 50% dispara com impacto Medium",
			byRegion: map[string]*domain.RegionRevenue{
				"A": {TotalRevenue: 130},
				"B": {TotalRevenue: 70},
			},
			expectInsight:  true,
			expectedImpact: domain.ImpactMedium,
		},
		{
			name: "Margem de 50% ou mais dispara com impacto High",
			byRegion: map[string]*domain.RegionRevenue{
				"A": {TotalRevenue: 160},
				"B": {TotalRevenue: 40},
			},
			expectInsight:  true,
			expectedImpact: domain.ImpactHigh,
		},
		{
			name:          "Mapa vazio não dispara",
			byRegion:      map[string]*domain.RegionRevenue{},
			expectInsight: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := regionalInsight(tt.byRegion)

			if !tt.expectInsight {
				assert.Nil(t, insight)
				return
			}

			require.NotNil(t, insight)
			assert.Equal(t, tt.expectedImpact, insight.Impact)
			assert.Contains(t, insight.Description, "A")
		})
	}
}

func TestInventoryInsightImpactScaling(t *testing.T) {
	tests := []struct {
		name           string
		lowStock       []*domain.LowStockProduct
		expectedImpact string
	}{
		{
			name: "Estoque zerado é Critical",
			lowStock: []*domain.LowStockProduct{
				{CurrentStock: 0, ReorderLevel: 10},
			},
			expectedImpact: domain.ImpactCritical,
		},
		{
			name: "Estoque na metade do nível de reposição é High",
			lowStock: []*domain.LowStockProduct{
				{CurrentStock: 5, ReorderLevel: 10},
			},
			expectedImpact: domain.ImpactHigh,
		},
		{
			name: "Estoque pouco abaixo do nível de reposição é Medium",
			lowStock: []*domain.LowStockProduct{
				{CurrentStock: 8, ReorderLevel: 10},
			},
			expectedImpact: domain.ImpactMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := inventoryInsight(&domain.InventoryInsights{
				TotalProductsAtRisk: len(tt.lowStock),
				LowStockProducts:    tt.lowStock,
			})

			require.NotNil(t, insight)
			assert.Equal(t, tt.expectedImpact, insight.Impact)
		})
	}
}

func TestRetentionInsight(t *testing.T) {
	assert.Nil(t, retentionInsight(&domain.CustomerSummary{TotalCustomers: 10, ChurnRate: 0.5}))

	insight := retentionInsight(&domain.CustomerSummary{TotalCustomers: 10, ChurnRate: 0.667})
	require.NotNil(t, insight)
	assert.Equal(t, "Customer Retention Concern", insight.Title)
	assert.Equal(t, domain.ImpactHigh, insight.Impact)
	assert.Contains(t, insight.Description, "66.7%")
}

func TestFilter(t *testing.T) {
	insights := Generate(metricsFixture())

	tests := []struct {
		name     string
		category string
		limit    int
		expected int
	}{
		{name: "Sem filtro retorna tudo", expected: 4},
		{name: "Substring case-insensitive", category: "inventory", expected: 1},
		{name: "Substring parcial", category: "Perf", expected: 1},
		{name: "Categoria sem correspondência retorna vazio", category: "Nonexistent", expected: 0},
		{name: "Limit corta a lista", limit: 2, expected: 2},
		{name: "Limit maior que a lista não corta", limit: 10, expected: 4},
		{name: "Categoria e limit combinados", category: "a", limit: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(insights, tt.category, tt.limit)
			assert.Len(t, filtered, tt.expected)
		})
	}
}
