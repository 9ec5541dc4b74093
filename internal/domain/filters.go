package domain

// MetricFilters representa os filtros opcionais aceitos pelos endpoints de
// métricas. Datas são strings ISO (yyyy-mm-dd) comparadas lexicamente, com
// limites inclusivos. Limit não filtra vendas: ele trunca a lista final depois
// da agregação (0 = sem limite).
type MetricFilters struct {
	Region    string
	Category  string
	StartDate string
	EndDate   string
	Limit     int
}

// HasRecordFilters indica se algum filtro em nível de venda está presente.
// Limit não conta: sozinho ele ainda permite servir o snapshot pré-computado.
func (f *MetricFilters) HasRecordFilters() bool {
	if f == nil {
		return false
	}
	return f.Region != "" || f.Category != "" || f.StartDate != "" || f.EndDate != ""
}
