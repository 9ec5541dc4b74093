// Package csvstore carrega os registros a partir dos arquivos CSV gerados
// pelo pipeline de dados (customers.csv, products.csv, sales.csv,
// inventory.csv).
package csvstore

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

const (
	customersFile = "customers.csv"
	productsFile  = "products.csv"
	salesFile     = "sales.csv"
	inventoryFile = "inventory.csv"
)

type Store struct {
	dataDir string
}

func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Load lê os quatro arquivos do diretório de dados. Arquivo ausente ou
// ilegível degrada para conjunto vazio; apenas o diretório inexistente é
// tratado como falha total (quem chama mantém o snapshot anterior).
func (s *Store) Load(_ context.Context) (*domain.RecordSet, error) {
	if _, err := os.Stat(s.dataDir); err != nil {
		return nil, errors.Wrapf(err, "diretório de dados inacessível: %s", s.dataDir)
	}

	records := &domain.RecordSet{
		Customers: s.loadCustomers(),
		Products:  s.loadProducts(),
		Sales:     s.loadSales(),
		Inventory: s.loadInventory(),
	}

	logrus.WithFields(logrus.Fields{
		"customers": len(records.Customers),
		"products":  len(records.Products),
		"sales":     len(records.Sales),
		"inventory": len(records.Inventory),
	}).Info("Registros carregados dos arquivos CSV")

	return records, nil
}

func (s *Store) loadCustomers() []domain.Customer {
	rows := s.readFile(customersFile)

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.Atoi(row.get("id"))
		if err != nil {
			s.warnRow(customersFile, "id", row.get("id"))
			continue
		}

		age, err := strconv.Atoi(row.get("age"))
		if err != nil {
			s.warnRow(customersFile, "age", row.get("age"))
			continue
		}

		customers = append(customers, domain.Customer{
			ID:        id,
			Name:      row.get("name"),
			Age:       age,
			Region:    row.get("region"),
			CreatedAt: row.get("created_at"),
		})
	}

	return customers
}

func (s *Store) loadProducts() []domain.Product {
	rows := s.readFile(productsFile)

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.Atoi(row.get("id"))
		if err != nil {
			s.warnRow(productsFile, "id", row.get("id"))
			continue
		}

		price, err := strconv.ParseFloat(row.get("price"), 64)
		if err != nil {
			s.warnRow(productsFile, "price", row.get("price"))
			continue
		}

		products = append(products, domain.Product{
			ID:        id,
			Name:      row.get("name"),
			Category:  row.get("category"),
			Price:     price,
			Supplier:  row.get("supplier"),
			CreatedAt: row.get("created_at"),
		})
	}

	return products
}

func (s *Store) loadSales() []domain.Sale {
	rows := s.readFile(salesFile)

	sales := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.Atoi(row.get("id"))
		if err != nil {
			s.warnRow(salesFile, "id", row.get("id"))
			continue
		}

		customerID, err := strconv.Atoi(row.get("customer_id"))
		if err != nil {
			s.warnRow(salesFile, "customer_id", row.get("customer_id"))
			continue
		}

		productID, err := strconv.Atoi(row.get("product_id"))
		if err != nil {
			s.warnRow(salesFile, "product_id", row.get("product_id"))
			continue
		}

		quantity, err := strconv.Atoi(row.get("quantity"))
		if err != nil {
			s.warnRow(salesFile, "quantity", row.get("quantity"))
			continue
		}

		unitPrice, err := strconv.ParseFloat(row.get("unit_price"), 64)
		if err != nil {
			s.warnRow(salesFile, "unit_price", row.get("unit_price"))
			continue
		}

		totalAmount, err := strconv.ParseFloat(row.get("total_amount"), 64)
		if err != nil {
			s.warnRow(salesFile, "total_amount", row.get("total_amount"))
			continue
		}

		sales = append(sales, domain.Sale{
			ID:          id,
			CustomerID:  customerID,
			ProductID:   productID,
			Date:        row.get("date"),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			TotalAmount: totalAmount,
		})
	}

	return sales
}

func (s *Store) loadInventory() []domain.Inventory {
	rows := s.readFile(inventoryFile)

	inventory := make([]domain.Inventory, 0, len(rows))
	for _, row := range rows {
		productID, err := strconv.Atoi(row.get("product_id"))
		if err != nil {
			s.warnRow(inventoryFile, "product_id", row.get("product_id"))
			continue
		}

		currentStock, err := strconv.Atoi(row.get("current_stock"))
		if err != nil {
			s.warnRow(inventoryFile, "current_stock", row.get("current_stock"))
			continue
		}

		reorderLevel, err := strconv.Atoi(row.get("reorder_level"))
		if err != nil {
			s.warnRow(inventoryFile, "reorder_level", row.get("reorder_level"))
			continue
		}

		maxStock, err := strconv.Atoi(row.get("max_stock"))
		if err != nil {
			s.warnRow(inventoryFile, "max_stock", row.get("max_stock"))
			continue
		}

		turnoverRate, err := strconv.ParseFloat(row.get("turnover_rate"), 64)
		if err != nil {
			s.warnRow(inventoryFile, "turnover_rate", row.get("turnover_rate"))
			continue
		}

		inventory = append(inventory, domain.Inventory{
			ProductID:    productID,
			CurrentStock: currentStock,
			ReorderLevel: reorderLevel,
			MaxStock:     maxStock,
			TurnoverRate: turnoverRate,
		})
	}

	return inventory
}

// csvRow associa uma linha ao índice de colunas do cabeçalho
type csvRow struct {
	header map[string]int
	values []string
}

func (r csvRow) get(column string) string {
	idx, ok := r.header[column]
	if !ok || idx >= len(r.values) {
		return ""
	}
	return r.values[idx]
}

// readFile lê um CSV com cabeçalho. Qualquer falha de leitura degrada para
// zero linhas com um aviso no log.
func (s *Store) readFile(name string) []csvRow {
	path := filepath.Join(s.dataDir, name)

	f, err := os.Open(path)
	if err != nil {
		logrus.WithError(err).WithField("file", path).
			Warn("Arquivo de dados ausente ou ilegível, conjunto carregado vazio")
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		logrus.WithError(err).WithField("file", path).
			Warn("Falha ao ler CSV, conjunto carregado vazio")
		return nil
	}

	if len(lines) < 2 {
		return nil
	}

	header := make(map[string]int, len(lines[0]))
	for idx, column := range lines[0] {
		header[column] = idx
	}

	rows := make([]csvRow, 0, len(lines)-1)
	for _, values := range lines[1:] {
		rows = append(rows, csvRow{header: header, values: values})
	}

	return rows
}

func (s *Store) warnRow(file, column, value string) {
	logrus.WithFields(logrus.Fields{
		"file":   file,
		"column": column,
		"value":  value,
	}).Warn("Linha com valor inválido ignorada")
}
