// Package querying publica o snapshot imutável de registros e métricas e
// responde as consultas do dashboard a partir dele.
package querying

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/datastore"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// Snapshot é o estado imutável publicado após cada carga: registros, índices
// e métricas pré-computadas. Leitores nunca veem estado parcial; um refresh
// monta um Snapshot novo de lado e troca o ponteiro de uma vez.
type Snapshot struct {
	Generation    string
	LoadedAt      time.Time
	Records       *domain.RecordSet
	CustomersByID map[int]*domain.Customer
	ProductsByID  map[int]*domain.Product
	ActiveIDs     map[int]struct{}
	Metrics       *domain.DashboardMetrics
}

// Service implementa Querier sobre um RecordStore
type Service struct {
	store     datastore.RecordStore
	snapshot  atomic.Pointer[Snapshot]
	refreshMu sync.Mutex
}

func NewService(store datastore.RecordStore) *Service {
	return &Service{store: store}
}

// RefreshCache recarrega os registros e publica um snapshot novo. A troca é
// atômica: consultas em andamento continuam lendo o snapshot antigo. Se a
// carga falhar, o snapshot anterior permanece publicado.
func (s *Service) RefreshCache(ctx context.Context) (*Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	started := time.Now()

	records, err := s.store.Load(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao recarregar registros, snapshot anterior mantido")
		return nil, errors.Wrap(ErrRefreshFailed, err.Error())
	}

	snapshot := buildSnapshot(records)
	s.snapshot.Store(snapshot)

	logrus.WithFields(logrus.Fields{
		"generation": snapshot.Generation,
		"customers":  len(records.Customers),
		"products":   len(records.Products),
		"sales":      len(records.Sales),
		"duration":   time.Since(started).String(),
	}).Info("Snapshot publicado")

	return snapshot, nil
}

// Snapshot retorna o snapshot corrente, nil antes da primeira carga
func (s *Service) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

func (s *Service) RevenueByRegion(filters *domain.MetricFilters) (map[string]*domain.RegionRevenue, error) {
	metrics, err := s.metricsFor(filters)
	if err != nil {
		return nil, err
	}
	return metrics.RevenueByRegion, nil
}

func (s *Service) TopProducts(filters *domain.MetricFilters) ([]*domain.TopProduct, error) {
	metrics, err := s.metricsFor(filters)
	if err != nil {
		return nil, err
	}

	products := metrics.TopProducts
	if filters != nil && filters.Limit > 0 && filters.Limit < len(products) {
		products = products[:filters.Limit]
	}

	return products, nil
}

func (s *Service) CategoryPerformance(filters *domain.MetricFilters) (map[string]*domain.CategoryPerformance, error) {
	metrics, err := s.metricsFor(filters)
	if err != nil {
		return nil, err
	}
	return metrics.CategoryPerformance, nil
}

func (s *Service) CustomerSummary(filters *domain.MetricFilters) (*domain.CustomerSummary, error) {
	metrics, err := s.metricsFor(filters)
	if err != nil {
		return nil, err
	}
	return metrics.CustomerSummary, nil
}

func (s *Service) AgeGroups(filters *domain.MetricFilters) (map[string]*domain.AgeGroupAnalysis, error) {
	metrics, err := s.metricsFor(filters)
	if err != nil {
		return nil, err
	}
	return metrics.AgeGroups, nil
}

// InventoryRisks não aceita filtros: o estoque não é derivado de vendas
func (s *Service) InventoryRisks() (*domain.InventoryInsights, error) {
	metrics, err := s.metricsFor(nil)
	if err != nil {
		return nil, err
	}
	return metrics.InventoryInsights, nil
}

func (s *Service) MonthlyTrends(filters *domain.MetricFilters) ([]*domain.MonthlyTrend, error) {
	metrics, err := s.metricsFor(filters)
	if err != nil {
		return nil, err
	}
	return metrics.MonthlyTrends, nil
}

func (s *Service) BusinessInsights(category string, limit int) ([]*domain.BusinessInsight, error) {
	metrics, err := s.metricsFor(nil)
	if err != nil {
		return nil, err
	}
	return insighting.Filter(metrics.BusinessInsights, category, limit), nil
}

func (s *Service) SalesByRegion(filters *domain.MetricFilters) ([]*domain.RegionChartData, error) {
	metrics, err := s.metricsFor(filters)
	if err != nil {
		return nil, err
	}
	return metrics.SalesByRegion, nil
}

// metricsFor escolhe o caminho da consulta: sem filtro de registro responde
// com as métricas pré-computadas do snapshot; com filtro, recomputa pelos
// mesmos agregadores sobre as vendas filtradas.
func (s *Service) metricsFor(filters *domain.MetricFilters) (*domain.DashboardMetrics, error) {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}

	if filters == nil || !filters.HasRecordFilters() {
		return snapshot.Metrics, nil
	}

	filtered := aggregating.FilterSales(
		snapshot.Records.Sales, filters, snapshot.CustomersByID, snapshot.ProductsByID)

	return buildMetrics(snapshot.Records, filtered, snapshot.CustomersByID,
		snapshot.ProductsByID, snapshot.ActiveIDs), nil
}

// buildSnapshot monta o snapshot completo de lado, sem tocar no publicado
func buildSnapshot(records *domain.RecordSet) *Snapshot {
	records.Inventory = normalizeInventory(records)

	customersByID := aggregating.IndexCustomers(records.Customers)
	productsByID := aggregating.IndexProducts(records.Products)
	activeIDs := aggregating.ActiveCustomerIDs(records.Sales)

	generation, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Falha ao gerar ID de geração, usando timestamp")
		generation = time.Now().UTC().Format("20060102150405")
	}

	return &Snapshot{
		Generation:    generation,
		LoadedAt:      time.Now().UTC(),
		Records:       records,
		CustomersByID: customersByID,
		ProductsByID:  productsByID,
		ActiveIDs:     activeIDs,
		Metrics:       buildMetrics(records, records.Sales, customersByID, productsByID, activeIDs),
	}
}

// buildMetrics roda todos os agregadores sobre o conjunto de vendas recebido.
// O mesmo caminho serve o pré-computo do snapshot e o recomputo filtrado.
func buildMetrics(
	records *domain.RecordSet,
	sales []domain.Sale,
	customersByID map[int]*domain.Customer,
	productsByID map[int]*domain.Product,
	activeIDs map[int]struct{},
) *domain.DashboardMetrics {
	metrics := &domain.DashboardMetrics{
		RevenueByRegion:     aggregating.RevenueByRegion(sales, customersByID),
		TopProducts:         aggregating.TopProducts(sales, productsByID),
		CategoryPerformance: aggregating.CategoryPerformance(sales, productsByID),
		CustomerSummary:     aggregating.CustomerSummary(records.Customers, sales, activeIDs),
		AgeGroups:           aggregating.AgeGroups(records.Customers, sales, activeIDs),
		InventoryInsights:   aggregating.InventoryInsights(records.Inventory, productsByID),
		MonthlyTrends:       aggregating.MonthlyTrends(sales),
		SalesByRegion:       aggregating.SalesByRegion(sales, customersByID),
	}

	metrics.BusinessInsights = insighting.Generate(metrics)

	return metrics
}

// normalizeInventory garante posição de estoque para todo produto: produto sem
// registro de inventário recebe o registro sintético padrão do pipeline de
// dados (estoque zerado, reposição 10, máximo 100, giro 1.0).
func normalizeInventory(records *domain.RecordSet) []domain.Inventory {
	byProduct := aggregating.IndexInventory(records.Inventory)

	normalized := make([]domain.Inventory, 0, len(records.Products))
	for _, product := range records.Products {
		if item, ok := byProduct[product.ID]; ok {
			normalized = append(normalized, *item)
			continue
		}

		normalized = append(normalized, domain.Inventory{
			ProductID:    product.ID,
			CurrentStock: 0,
			ReorderLevel: 10,
			MaxStock:     100,
			TurnoverRate: 1.0,
		})
	}

	return normalized
}
