// Package postgresstore carrega os registros a partir das tabelas customers,
// products, sales e inventory de um banco Postgres.
package postgresstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

type Store struct {
	conn postgres.Queryer
}

func NewStore(conn postgres.Queryer) *Store {
	return &Store{conn: conn}
}

// Load lê as quatro tabelas. Banco inacessível é falha total (quem chama
// mantém o snapshot anterior); falha em uma tabela individual degrada aquele
// conjunto para vazio.
func (s *Store) Load(ctx context.Context) (*domain.RecordSet, error) {
	if err := s.conn.Ping(ctx); err != nil {
		return nil, errors.Wrap(err, "banco de dados inacessível")
	}

	records := &domain.RecordSet{
		Customers: s.loadCustomers(ctx),
		Products:  s.loadProducts(ctx),
		Sales:     s.loadSales(ctx),
		Inventory: s.loadInventory(ctx),
	}

	logrus.WithFields(logrus.Fields{
		"customers": len(records.Customers),
		"products":  len(records.Products),
		"sales":     len(records.Sales),
		"inventory": len(records.Inventory),
	}).Info("Registros carregados do Postgres")

	return records, nil
}

func (s *Store) loadCustomers(ctx context.Context) []domain.Customer {
	rows := s.query(ctx, "customers", squirrel.
		Select("id", "name", "age", "region", "created_at").
		From("customers").
		OrderBy("id ASC"))
	if rows == nil {
		return nil
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &c.Region, &c.CreatedAt); err != nil {
			logrus.WithError(err).Warn("Falha ao escanear customer, linha ignorada")
			continue
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao iterar linhas de customers")
	}

	return customers
}

func (s *Store) loadProducts(ctx context.Context) []domain.Product {
	rows := s.query(ctx, "products", squirrel.
		Select("id", "name", "category", "price", "supplier", "created_at").
		From("products").
		OrderBy("id ASC"))
	if rows == nil {
		return nil
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Supplier, &p.CreatedAt); err != nil {
			logrus.WithError(err).Warn("Falha ao escanear product, linha ignorada")
			continue
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao iterar linhas de products")
	}

	return products
}

func (s *Store) loadSales(ctx context.Context) []domain.Sale {
	rows := s.query(ctx, "sales", squirrel.
		Select("id", "customer_id", "product_id", "date", "quantity", "unit_price", "total_amount").
		From("sales").
		OrderBy("id ASC"))
	if rows == nil {
		return nil
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.CustomerID,
			&sale.ProductID,
			&sale.Date,
			&sale.Quantity,
			&sale.UnitPrice,
			&sale.TotalAmount,
		); err != nil {
			logrus.WithError(err).Warn("Falha ao escanear sale, linha ignorada")
			continue
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao iterar linhas de sales")
	}

	return sales
}

func (s *Store) loadInventory(ctx context.Context) []domain.Inventory {
	rows := s.query(ctx, "inventory", squirrel.
		Select("product_id", "current_stock", "reorder_level", "max_stock", "turnover_rate").
		From("inventory").
		OrderBy("product_id ASC"))
	if rows == nil {
		return nil
	}
	defer rows.Close()

	inventory := make([]domain.Inventory, 0)
	for rows.Next() {
		var inv domain.Inventory
		if err := rows.Scan(
			&inv.ProductID,
			&inv.CurrentStock,
			&inv.ReorderLevel,
			&inv.MaxStock,
			&inv.TurnoverRate,
		); err != nil {
			logrus.WithError(err).Warn("Falha ao escanear inventory, linha ignorada")
			continue
		}
		inventory = append(inventory, inv)
	}

	if err := rows.Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao iterar linhas de inventory")
	}

	return inventory
}

func (s *Store) query(ctx context.Context, table string, builder squirrel.SelectBuilder) *sql.Rows {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		logrus.WithError(err).WithField("table", table).Warn("Erro ao construir a query")
		return nil
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		logrus.WithError(err).WithField("table", table).
			Warn("Falha ao consultar tabela, conjunto carregado vazio")
		return nil
	}

	return rows
}
