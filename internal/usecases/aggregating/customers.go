package aggregating

import (
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// ActiveCustomerIDs retorna o conjunto de clientes com pelo menos uma venda.
// É sempre computado sobre as vendas NÃO filtradas do snapshot: a noção de
// cliente ativo/churned não depende dos filtros da consulta.
func ActiveCustomerIDs(sales []domain.Sale) map[int]struct{} {
	active := make(map[int]struct{}, len(sales))
	for _, sale := range sales {
		active[sale.CustomerID] = struct{}{}
	}
	return active
}

// CustomerSummary resume a base de clientes. Os campos de gasto (avg_customer_value,
// avg_order_value) refletem as vendas recebidas (possivelmente filtradas);
// os campos de churn usam sempre o conjunto de ativos do snapshot.
func CustomerSummary(
	customers []domain.Customer,
	sales []domain.Sale,
	activeIDs map[int]struct{},
) *domain.CustomerSummary {
	summary := &domain.CustomerSummary{
		TotalCustomers: len(customers),
	}

	for _, customer := range customers {
		if _, ok := activeIDs[customer.ID]; ok {
			summary.ActiveCustomers++
		}
	}
	summary.ChurnedCustomers = summary.TotalCustomers - summary.ActiveCustomers

	if summary.TotalCustomers > 0 {
		summary.ChurnRate = utils.RoundWithThreeDecimalPlace(
			float64(summary.ChurnedCustomers) / float64(summary.TotalCustomers))
	}

	customerSpend := spendByCustomer(customers, sales)

	var totalRevenue, customerRevenue float64
	for _, sale := range sales {
		totalRevenue += sale.TotalAmount
	}
	for _, spend := range customerSpend {
		customerRevenue += spend
	}

	if len(sales) > 0 {
		summary.AvgOrderValue = utils.RoundWithTwoDecimalPlace(
			totalRevenue / float64(len(sales)))
	}

	if summary.ActiveCustomers > 0 {
		summary.AvgCustomerValue = utils.RoundWithTwoDecimalPlace(
			customerRevenue / float64(summary.ActiveCustomers))
	}

	return summary
}

// AgeGroups agrega gasto, pedidos e churn por faixa etária. A população de
// cada faixa é o total de clientes nela; as médias são sobre os ativos da
// faixa. Faixa sem cliente não aparece no resultado.
func AgeGroups(
	customers []domain.Customer,
	sales []domain.Sale,
	activeIDs map[int]struct{},
) map[string]*domain.AgeGroupAnalysis {
	customerSpend := spendByCustomer(customers, sales)
	customerOrders := ordersByCustomer(customers, sales)

	type bandTotals struct {
		population int
		active     int
		totalSpent float64
		orders     int
	}
	bands := make(map[string]*bandTotals)

	for _, customer := range customers {
		band := ageBand(customer.Age)

		totals, ok := bands[band]
		if !ok {
			totals = &bandTotals{}
			bands[band] = totals
		}

		totals.population++
		if _, ok := activeIDs[customer.ID]; ok {
			totals.active++
		}
		totals.totalSpent += customerSpend[customer.ID]
		totals.orders += customerOrders[customer.ID]
	}

	groups := make(map[string]*domain.AgeGroupAnalysis, len(bands))
	for band, totals := range bands {
		analysis := &domain.AgeGroupAnalysis{
			TotalSpent: utils.RoundWithTwoDecimalPlace(totals.totalSpent),
		}

		if totals.active > 0 {
			analysis.AvgSpent = utils.RoundWithTwoDecimalPlace(
				totals.totalSpent / float64(totals.active))
			analysis.AvgOrders = utils.RoundWithTwoDecimalPlace(
				float64(totals.orders) / float64(totals.active))
		}

		analysis.ChurnRate = utils.RoundWithThreeDecimalPlace(
			float64(totals.population-totals.active) / float64(totals.population))

		groups[band] = analysis
	}

	return groups
}

// ageBand mapeia a idade para as faixas usadas pelo dashboard
func ageBand(age int) string {
	switch {
	case age <= 25:
		return "18-25"
	case age <= 35:
		return "26-35"
	case age <= 50:
		return "36-50"
	case age <= 65:
		return "51-65"
	default:
		return "65+"
	}
}

// spendByCustomer soma o total_amount das vendas de cada cliente existente.
// Vendas com customer_id não resolvível não pertencem a ninguém.
func spendByCustomer(customers []domain.Customer, sales []domain.Sale) map[int]float64 {
	known := make(map[int]struct{}, len(customers))
	for _, customer := range customers {
		known[customer.ID] = struct{}{}
	}

	spend := make(map[int]float64, len(customers))
	for _, sale := range sales {
		if _, ok := known[sale.CustomerID]; !ok {
			continue
		}
		spend[sale.CustomerID] += sale.TotalAmount
	}

	return spend
}

func ordersByCustomer(customers []domain.Customer, sales []domain.Sale) map[int]int {
	known := make(map[int]struct{}, len(customers))
	for _, customer := range customers {
		known[customer.ID] = struct{}{}
	}

	orders := make(map[int]int, len(customers))
	for _, sale := range sales {
		if _, ok := known[sale.CustomerID]; !ok {
			continue
		}
		orders[sale.CustomerID]++
	}

	return orders
}
