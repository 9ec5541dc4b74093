package querying

import (
	"context"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Querier é a fachada de consulta usada pelos handlers HTTP. Toda leitura sai
// do snapshot corrente; consultas sem filtro de registro usam as métricas
// pré-computadas e consultas filtradas recomputam pelos mesmos agregadores.
type Querier interface {
	// RevenueByRegion retorna receita, vendas e ticket médio por região
	RevenueByRegion(filters *domain.MetricFilters) (map[string]*domain.RegionRevenue, error)

	// TopProducts retorna os produtos ordenados por receita; filters.Limit
	// corta a lista depois da agregação
	TopProducts(filters *domain.MetricFilters) ([]*domain.TopProduct, error)

	// CategoryPerformance retorna o agregado por categoria de produto
	CategoryPerformance(filters *domain.MetricFilters) (map[string]*domain.CategoryPerformance, error)

	// CustomerSummary retorna o resumo da base de clientes
	CustomerSummary(filters *domain.MetricFilters) (*domain.CustomerSummary, error)

	// AgeGroups retorna a análise por faixa etária
	AgeGroups(filters *domain.MetricFilters) (map[string]*domain.AgeGroupAnalysis, error)

	// InventoryRisks retorna os riscos de estoque do snapshot corrente
	InventoryRisks() (*domain.InventoryInsights, error)

	// MonthlyTrends retorna a série mensal em ordem cronológica
	MonthlyTrends(filters *domain.MetricFilters) ([]*domain.MonthlyTrend, error)

	// BusinessInsights retorna os insights do snapshot, filtrados por
	// substring de categoria (case-insensitive) e cortados por limit
	BusinessInsights(category string, limit int) ([]*domain.BusinessInsight, error)

	// SalesByRegion retorna a série regional ordenada para os gráficos
	SalesByRegion(filters *domain.MetricFilters) ([]*domain.RegionChartData, error)

	// RefreshCache recarrega os registros da fonte e publica um snapshot
	// novo. Falha de carga mantém o snapshot anterior intacto.
	RefreshCache(ctx context.Context) (*Snapshot, error)

	// Snapshot retorna o snapshot corrente (nil antes da primeira carga)
	Snapshot() *Snapshot
}
