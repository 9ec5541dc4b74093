// Package aggregating contém o filtro de vendas e os agregadores de métricas.
// Todas as funções são puras: o resultado depende apenas do conjunto de
// registros e dos filtros recebidos.
package aggregating

import (
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// IndexCustomers constrói o índice por ID usado nos joins. Construído uma vez
// por snapshot e reaproveitado em todos os filtros e agregações.
func IndexCustomers(customers []domain.Customer) map[int]*domain.Customer {
	byID := make(map[int]*domain.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}
	return byID
}

// IndexProducts constrói o índice de produtos por ID
func IndexProducts(products []domain.Product) map[int]*domain.Product {
	byID := make(map[int]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID
}

// IndexInventory constrói o índice de inventário por ID de produto
func IndexInventory(inventory []domain.Inventory) map[int]*domain.Inventory {
	byID := make(map[int]*domain.Inventory, len(inventory))
	for i := range inventory {
		byID[inventory[i].ProductID] = &inventory[i]
	}
	return byID
}

// FilterSales retorna a subsequência de vendas, na ordem original, em que
// TODOS os predicados presentes valem:
//   - region: região do cliente joinado, igualdade exata case-sensitive;
//     venda com customer_id não resolvível é excluída quando o filtro está ativo
//   - category: categoria do produto joinado, mesma regra de exclusão
//   - startDate/endDate: comparação lexical de datas ISO, limites inclusivos
//
// Limit não participa: ele é aplicado por quem chama, depois da agregação.
// Sem nenhum filtro presente a entrada é retornada como veio.
func FilterSales(
	sales []domain.Sale,
	filters *domain.MetricFilters,
	customersByID map[int]*domain.Customer,
	productsByID map[int]*domain.Product,
) []domain.Sale {
	if !filters.HasRecordFilters() {
		return sales
	}

	filtered := make([]domain.Sale, 0, len(sales))

	for _, sale := range sales {
		if filters.Region != "" {
			customer, ok := customersByID[sale.CustomerID]
			if !ok || customer.Region != filters.Region {
				continue
			}
		}

		if filters.Category != "" {
			product, ok := productsByID[sale.ProductID]
			if !ok || product.Category != filters.Category {
				continue
			}
		}

		if filters.StartDate != "" && sale.Date < filters.StartDate {
			continue
		}

		if filters.EndDate != "" && sale.Date > filters.EndDate {
			continue
		}

		filtered = append(filtered, sale)
	}

	return filtered
}
