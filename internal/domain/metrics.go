package domain

// Formatos de saída espelham os JSONs consumidos pelo dashboard (snake_case).

// RegionRevenue agrega as vendas de uma região
type RegionRevenue struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalSales    int     `json:"total_sales"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// TopProduct agrega as vendas de um produto
type TopProduct struct {
	ProductID         int     `json:"product_id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	TotalQuantitySold int     `json:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	NumberOfSales     int     `json:"number_of_sales"`
}

// CategoryPerformance agrega as vendas de uma categoria de produto
type CategoryPerformance struct {
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	TotalQuantity int     `json:"total_quantity"`
	NumberOfSales int     `json:"number_of_sales"`
}

// CustomerSummary resume a base de clientes do snapshot corrente.
// Cliente "ativo" tem pelo menos uma venda no conjunto NÃO filtrado;
// os demais contam como churned.
type CustomerSummary struct {
	TotalCustomers   int     `json:"total_customers"`
	ActiveCustomers  int     `json:"active_customers"`
	ChurnedCustomers int     `json:"churned_customers"`
	ChurnRate        float64 `json:"churn_rate"`
	AvgCustomerValue float64 `json:"avg_customer_value"`
	AvgOrderValue    float64 `json:"avg_order_value"`
}

// AgeGroupAnalysis agrega gasto e churn de uma faixa etária
type AgeGroupAnalysis struct {
	AvgSpent   float64 `json:"avg_spent"`
	TotalSpent float64 `json:"total_spent"`
	AvgOrders  float64 `json:"avg_orders"`
	ChurnRate  float64 `json:"churn_rate"`
}

// MonthlyTrend agrega as vendas de um mês (year_month no formato yyyy-mm)
type MonthlyTrend struct {
	YearMonth     string  `json:"year_month"`
	Revenue       float64 `json:"revenue"`
	QuantitySold  int     `json:"quantity_sold"`
	NumberOfSales int     `json:"number_of_sales"`
}

// LowStockProduct é um produto com estoque igual ou abaixo do nível de reposição
type LowStockProduct struct {
	ProductID    int     `json:"product_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock int     `json:"current_stock"`
	ReorderLevel int     `json:"reorder_level"`
	TurnoverRate float64 `json:"turnover_rate"`
}

// CategoryTurnover resume o giro de estoque de uma categoria
type CategoryTurnover struct {
	AvgTurnover float64 `json:"avg_turnover"`
	MinTurnover float64 `json:"min_turnover"`
	MaxTurnover float64 `json:"max_turnover"`
}

// InventoryInsights reúne os riscos de estoque do snapshot
type InventoryInsights struct {
	LowStockProducts    []*LowStockProduct           `json:"low_stock_products"`
	TotalProductsAtRisk int                          `json:"total_products_at_risk"`
	TurnoverByCategory  map[string]*CategoryTurnover `json:"turnover_by_category"`
}

// RegionChartData é a série por região consumida pelos gráficos do dashboard
type RegionChartData struct {
	Region        string  `json:"region"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalSales    int     `json:"total_sales"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// BusinessInsight é uma recomendação gerada pelas regras de negócio
type BusinessInsight struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Impact         string `json:"impact"`
	Category       string `json:"category"`
}

// Níveis de impacto dos insights
const (
	ImpactCritical = "Critical"
	ImpactHigh     = "High"
	ImpactMedium   = "Medium"
	ImpactLow      = "Low"
)

// DashboardMetrics é o conjunto de métricas pré-computadas de um snapshot,
// usado como caminho rápido quando a consulta não tem filtros
type DashboardMetrics struct {
	RevenueByRegion     map[string]*RegionRevenue      `json:"revenue_by_region"`
	TopProducts         []*TopProduct                  `json:"top_products"`
	CategoryPerformance map[string]*CategoryPerformance `json:"category_performance"`
	CustomerSummary     *CustomerSummary               `json:"customer_summary"`
	AgeGroups           map[string]*AgeGroupAnalysis   `json:"age_groups"`
	InventoryInsights   *InventoryInsights             `json:"inventory_insights"`
	MonthlyTrends       []*MonthlyTrend                `json:"monthly_trends"`
	SalesByRegion       []*RegionChartData             `json:"sales_by_region"`
	BusinessInsights    []*BusinessInsight             `json:"business_insights"`
}
