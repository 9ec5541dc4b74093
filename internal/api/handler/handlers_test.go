package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/infrastructure/datastore/mocks"
	"github.com/vfg2006/retail-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
	"go.uber.org/mock/gomock"
)

func testRecords() *domain.RecordSet {
	return &domain.RecordSet{
		Customers: []domain.Customer{
			{ID: 1, Name: "Alice", Age: 30, Region: "North"},
			{ID: 2, Name: "Bruno", Age: 22, Region: "South"},
		},
		Products: []domain.Product{
			{ID: 1, Name: "Laptop", Category: "Electronics", Price: 1500},
			{ID: 2, Name: "Coffee", Category: "Food", Price: 50},
		},
		Sales: []domain.Sale{
			{ID: 1, CustomerID: 1, ProductID: 1, Date: "2024-01-10", Quantity: 1, TotalAmount: 1500},
			{ID: 2, CustomerID: 2, ProductID: 2, Date: "2024-01-15", Quantity: 2, TotalAmount: 100},
		},
		Inventory: []domain.Inventory{
			{ProductID: 1, CurrentStock: 5, ReorderLevel: 10, MaxStock: 100, TurnoverRate: 2.0},
			{ProductID: 2, CurrentStock: 80, ReorderLevel: 10, MaxStock: 200, TurnoverRate: 4.0},
		},
	}
}

func testRouter(t *testing.T, loaded bool) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)

	service := querying.NewService(store)
	if loaded {
		store.EXPECT().Load(gomock.Any()).Return(testRecords(), nil)
		_, err := service.RefreshCache(context.Background())
		require.NoError(t, err)
	}

	rt := router.New(
		router.WithRoutes(Healthcheck(service)...),
		router.WithRoutes(Metrics(service, 10)...),
		router.WithRoutes(Insights(service)...),
		router.WithRoutes(Cache(service)...),
		router.WithNotFound(NotFoundHandler()),
	)

	return rt
}

func doRequest(t *testing.T, handler http.Handler, method, target string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	return recorder, envelope
}

func TestMetricEndpointsReturnEnvelope(t *testing.T) {
	rt := testRouter(t, true)

	paths := []string{
		"/revenue-by-region",
		"/top-products",
		"/category-performance",
		"/customer-summary",
		"/age-groups",
		"/inventory-risks",
		"/monthly-trends",
		"/business-insights",
		"/sales-by-region",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			recorder, envelope := doRequest(t, rt, http.MethodGet, path)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.True(t, envelope.Success)
			assert.NotNil(t, envelope.Data)
			assert.NotEmpty(t, envelope.Timestamp)
		})
	}
}

func TestMetricEndpointsBeforeLoad(t *testing.T) {
	rt := testRouter(t, false)

	recorder, envelope := doRequest(t, rt, http.MethodGet, "/revenue-by-region")

	// Falta de dados não é erro de transporte
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Message)
	assert.Nil(t, envelope.Data)
}

func TestTopProductsLimitHandling(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected int
	}{
		{name: "Limit explícito corta a lista", target: "/top-products?limit=1", expected: 1},
		{name: "Sem limit aplica o padrão", target: "/top-products", expected: 2},
		{name: "Limit não numérico é ignorado", target: "/top-products?limit=abc", expected: 2},
		{name: "Limit negativo é ignorado", target: "/top-products?limit=-3", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := testRouter(t, true)
			recorder, envelope := doRequest(t, rt, http.MethodGet, tt.target)

			assert.Equal(t, http.StatusOK, recorder.Code)
			require.True(t, envelope.Success)

			data, ok := envelope.Data.([]interface{})
			require.True(t, ok)
			assert.Len(t, data, tt.expected)
		})
	}
}

func TestRevenueByRegionWithFilter(t *testing.T) {
	rt := testRouter(t, true)

	_, envelope := doRequest(t, rt, http.MethodGet, "/revenue-by-region?region=North")
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "North")
	assert.NotContains(t, data, "South")
}

func TestBusinessInsightsUnknownCategoryIsEmptySuccess(t *testing.T) {
	rt := testRouter(t, true)

	recorder, envelope := doRequest(t, rt, http.MethodGet, "/business-insights?category=Nonexistent")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestHealthEndpoint(t *testing.T) {
	rt := testRouter(t, true)

	recorder, envelope := doRequest(t, rt, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
	assert.NotEmpty(t, data["generation"])

	cacheSize, ok := data["cache_size"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), cacheSize["customers"])

	assert.Len(t, data["endpoints"], len(endpoints))
}

func TestRefreshCacheEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(testRecords(), nil)

	service := querying.NewService(store)
	rt := router.New(
		router.WithRoutes(Cache(service)...),
	)

	recorder, envelope := doRequest(t, rt, http.MethodPost, "/refresh-cache")

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["generation"])
	assert.Equal(t, float64(2), data["customers"])
	assert.Equal(t, float64(2), data["sales"])
}

func TestRefreshCacheEndpointFailureKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)

	first := store.EXPECT().Load(gomock.Any()).Return(testRecords(), nil)
	store.EXPECT().Load(gomock.Any()).Return(nil, assert.AnError).After(first)

	service := querying.NewService(store)
	_, err := service.RefreshCache(context.Background())
	require.NoError(t, err)

	rt := router.New(
		router.WithRoutes(Metrics(service, 10)...),
		router.WithRoutes(Cache(service)...),
	)

	recorder, envelope := doRequest(t, rt, http.MethodPost, "/refresh-cache")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, envelope.Success)

	// As consultas continuam respondendo com o snapshot anterior
	_, after := doRequest(t, rt, http.MethodGet, "/customer-summary")
	assert.True(t, after.Success)
}

func TestUnknownRouteListsEndpoints(t *testing.T) {
	rt := testRouter(t, true)

	recorder, envelope := doRequest(t, rt, http.MethodGet, "/does-not-exist")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Endpoint not found", envelope.Message)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, data["available_endpoints"], len(endpoints))
}
