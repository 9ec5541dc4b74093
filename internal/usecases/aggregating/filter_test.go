package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func fixtureCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, Name: "Alice", Age: 30, Region: "North", CreatedAt: "2023-05-01"},
		{ID: 2, Name: "Bruno", Age: 22, Region: "South", CreatedAt: "2023-06-10"},
		{ID: 3, Name: "Carla", Age: 70, Region: "North", CreatedAt: "2023-07-20"},
	}
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Category: "Electronics", Price: 1500, Supplier: "Acme"},
		{ID: 2, Name: "Coffee", Category: "Food", Price: 50, Supplier: "Beans Co"},
	}
}

// A venda 4 referencia o cliente 99, que não existe no conjunto
func fixtureSales() []domain.Sale {
	return []domain.Sale{
		{ID: 1, CustomerID: 1, ProductID: 1, Date: "2024-01-10", Quantity: 1, UnitPrice: 1500, TotalAmount: 1500},
		{ID: 2, CustomerID: 2, ProductID: 2, Date: "2024-01-15", Quantity: 2, UnitPrice: 50, TotalAmount: 100},
		{ID: 3, CustomerID: 1, ProductID: 2, Date: "2024-02-05", Quantity: 1, UnitPrice: 50, TotalAmount: 50},
		{ID: 4, CustomerID: 99, ProductID: 1, Date: "2024-02-10", Quantity: 1, UnitPrice: 200, TotalAmount: 200},
	}
}

func fixtureInventory() []domain.Inventory {
	return []domain.Inventory{
		{ProductID: 1, CurrentStock: 5, ReorderLevel: 10, MaxStock: 100, TurnoverRate: 2.0},
		{ProductID: 2, CurrentStock: 80, ReorderLevel: 10, MaxStock: 200, TurnoverRate: 4.0},
	}
}

func TestFilterSales(t *testing.T) {
	customersByID := IndexCustomers(fixtureCustomers())
	productsByID := IndexProducts(fixtureProducts())
	sales := fixtureSales()

	tests := []struct {
		name     string
		filters  *domain.MetricFilters
		expected []int // IDs esperados, na ordem
	}{
		{
			name:     "Sem filtros retorna todas as vendas na ordem original",
			filters:  &domain.MetricFilters{},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "Filtro de região usa a região do cliente joinado",
			filters:  &domain.MetricFilters{Region: "North"},
			expected: []int{1, 3},
		},
		{
			name:     "Filtro de região exclui venda com cliente inexistente",
			filters:  &domain.MetricFilters{Region: "South"},
			expected: []int{2},
		},
		{
			name:     "Filtro de categoria usa a categoria do produto joinado",
			filters:  &domain.MetricFilters{Category: "Food"},
			expected: []int{2, 3},
		},
		{
			name:     "Limites de data são inclusivos",
			filters:  &domain.MetricFilters{StartDate: "2024-01-15", EndDate: "2024-02-05"},
			expected: []int{2, 3},
		},
		{
			name:     "Filtros combinam por E lógico",
			filters:  &domain.MetricFilters{Region: "North", Category: "Food"},
			expected: []int{3},
		},
		{
			name:     "Filtro sem correspondência retorna vazio",
			filters:  &domain.MetricFilters{Region: "West"},
			expected: []int{},
		},
		{
			name:     "Limit sozinho não é filtro de registro",
			filters:  &domain.MetricFilters{Limit: 1},
			expected: []int{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterSales(sales, tt.filters, customersByID, productsByID)

			ids := make([]int, 0, len(filtered))
			for _, sale := range filtered {
				ids = append(ids, sale.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

// Estreitar o intervalo de datas nunca pode aumentar o resultado
func TestFilterSalesNarrowingIsMonotonic(t *testing.T) {
	customersByID := IndexCustomers(fixtureCustomers())
	productsByID := IndexProducts(fixtureProducts())
	sales := fixtureSales()

	wide := FilterSales(sales, &domain.MetricFilters{StartDate: "2024-01-01", EndDate: "2024-12-31"}, customersByID, productsByID)
	narrow := FilterSales(sales, &domain.MetricFilters{StartDate: "2024-02-01", EndDate: "2024-12-31"}, customersByID, productsByID)

	assert.LessOrEqual(t, len(narrow), len(wide))

	wideIDs := make(map[int]bool, len(wide))
	for _, sale := range wide {
		wideIDs[sale.ID] = true
	}
	for _, sale := range narrow {
		assert.True(t, wideIDs[sale.ID], "venda %d do intervalo estreito deveria estar no largo", sale.ID)
	}
}

func TestFilterSalesDoesNotMutateInput(t *testing.T) {
	customersByID := IndexCustomers(fixtureCustomers())
	productsByID := IndexProducts(fixtureProducts())
	sales := fixtureSales()

	FilterSales(sales, &domain.MetricFilters{Region: "North"}, customersByID, productsByID)

	assert.Equal(t, fixtureSales(), sales)
}
