package domain

// Customer representa um cliente da rede de varejo
type Customer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Region    string `json:"region"`
	CreatedAt string `json:"created_at"`
}

// Product representa um produto do catálogo
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Supplier  string  `json:"supplier"`
	CreatedAt string  `json:"created_at"`
}

// Sale representa uma venda individual. CustomerID e ProductID podem apontar
// para registros inexistentes (FK pendente); agregações que dependem do join
// excluem essas vendas silenciosamente.
type Sale struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	ProductID  int     `json:"product_id"`
	Date       string  `json:"date"` // ISO (yyyy-mm-dd), comparável lexicamente
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	// TotalAmount é confiado como veio da fonte; nunca recalculado como
	// Quantity × UnitPrice
	TotalAmount float64 `json:"total_amount"`
}

// Inventory representa a posição de estoque de um produto (1:1)
type Inventory struct {
	ProductID    int     `json:"product_id"`
	CurrentStock int     `json:"current_stock"`
	ReorderLevel int     `json:"reorder_level"`
	MaxStock     int     `json:"max_stock"`
	TurnoverRate float64 `json:"turnover_rate"`
}

// RecordSet é o conjunto completo de registros carregados de uma vez pelo
// record store. Imutável depois de carregado; um refresh substitui o conjunto
// inteiro, nunca muta este no lugar.
type RecordSet struct {
	Customers []Customer
	Products  []Product
	Sales     []Sale
	Inventory []Inventory
}

// IsEmpty retorna verdadeiro quando nenhum dos conjuntos tem registros
func (rs *RecordSet) IsEmpty() bool {
	return rs == nil ||
		(len(rs.Customers) == 0 && len(rs.Products) == 0 &&
			len(rs.Sales) == 0 && len(rs.Inventory) == 0)
}
