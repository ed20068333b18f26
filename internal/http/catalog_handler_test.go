package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/service"
)

func TestCatalogHandler_GetCatalog(t *testing.T) {
	t.Run("returns the stored catalog", func(t *testing.T) {
		router, deps := newTestRouter(t, routerOptions{auth: true, persistence: true})
		version := mugCatalog()
		version.CreatedBy = "seller"
		deps.catalog.On("Load", mock.Anything).Return(version, service.CatalogSourceStore, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/catalog", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp CatalogResponse
		decodeData(t, w, &resp)
		assert.Equal(t, service.CatalogSourceStore, resp.Source)
		assert.Equal(t, 1, resp.Version)
		assert.Equal(t, "seller", resp.UpdatedBy)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "mug", resp.Products[0].ID)
		require.NotNil(t, resp.Products[0].Allocation)
		assert.Equal(t, model.AllocationByMix, resp.Products[0].Allocation.Mode)
	})

	t.Run("falls back to the default catalog without a service", func(t *testing.T) {
		cfg := DefaultRouterConfig()
		cfg.RateLimit = 0
		router := NewRouter(NewHealthHandler(), cfg)

		w := doRequest(router, http.MethodGet, "/api/catalog", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp CatalogResponse
		decodeData(t, w, &resp)
		assert.Equal(t, service.CatalogSourceDefault, resp.Source)
		assert.Len(t, resp.Products, len(service.DefaultCatalog()))
	})
}

func TestCatalogHandler_UpdateCatalog(t *testing.T) {
	const body = `{"products":[{"id":"mug","name":"Ceramic mug","master_carton_cbm":0.11,"units_per_carton":6,"factory_price_usd":5.51,"profit_margin":40,"mix_percent":100}]}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*testDeps)
		expectedStatus int
	}{
		{
			name: "saves a new version",
			body: body,
			setupMocks: func(deps *testDeps) {
				saved := mugCatalog()
				saved.Version = 2
				saved.CreatedBy = "seller"
				deps.catalog.On("Save", mock.Anything, mock.MatchedBy(func(products []model.Product) bool {
					return len(products) == 1 && products[0].Active && products[0].Allocation.MixPercent == 100
				}), "seller").Return(saved, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty catalog",
			body:           `{"products":[]}`,
			setupMocks:     func(*testDeps) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate ids",
			body:           `{"products":[{"id":"mug","name":"Mug"},{"id":"mug","name":"Mug again"}]}`,
			setupMocks:     func(*testDeps) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store down",
			body: body,
			setupMocks: func(deps *testDeps) {
				deps.catalog.On("Save", mock.Anything, mock.Anything, "seller").Return(model.CatalogVersion{}, service.ErrRepositoryNotConfigured).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, routerOptions{auth: true, persistence: true})
			tt.setupMocks(deps)

			w := doRequest(router, http.MethodPut, "/api/catalog", tt.body, sellerToken)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestCatalogHandler_UpdateRefreshesQuoteCatalog(t *testing.T) {
	router, deps := newTestRouter(t, routerOptions{auth: true, persistence: true})

	deps.catalog.On("Load", mock.Anything).Return(mugCatalog(), service.CatalogSourceStore, nil).Once()

	plate := mugCatalog()
	plate.Version = 2
	plate.Products[0].ID = "plate"
	plate.Products[0].Name = "Plate"
	deps.catalog.On("Save", mock.Anything, mock.Anything, "seller").Return(plate, nil).Once()

	quote := func() string {
		w := doRequest(router, http.MethodPost, "/api/quotes", `{"pricing":{"exchange_rate":3.2}}`, sellerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var view struct {
			Lines []struct {
				ProductID string `json:"product_id"`
			} `json:"lines"`
		}
		decodeData(t, w, &view)
		require.Len(t, view.Lines, 1)
		return view.Lines[0].ProductID
	}

	assert.Equal(t, "mug", quote())

	w := doRequest(router, http.MethodPut, "/api/catalog",
		`{"products":[{"id":"plate","name":"Plate","master_carton_cbm":0.11,"units_per_carton":6,"mix_percent":100}]}`, sellerToken)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "plate", quote())
}

func TestCatalogHandler_ListCatalogHistory(t *testing.T) {
	router, deps := newTestRouter(t, routerOptions{auth: true, persistence: true})
	deps.catalog.On("History", mock.Anything, 5).Return([]model.CatalogVersion{
		{ID: "v2", Version: 2, CreatedAt: time.Now()},
		{ID: "v1", Version: 1, CreatedAt: time.Now().Add(-time.Hour)},
	}, nil).Once()

	w := doRequest(router, http.MethodGet, "/api/catalog/history?limit=5", "", sellerToken)
	require.Equal(t, http.StatusOK, w.Code)

	var versions []model.CatalogVersion
	decodeData(t, w, &versions)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)
}
