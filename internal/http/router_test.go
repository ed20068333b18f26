package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/mocks"
	"github.com/guttosm/container-quote/internal/service"
)

const sellerToken = "seller-token"

func init() {
	gin.SetMode(gin.TestMode)
}

// testDeps holds the mocks behind a router built by newTestRouter.
type testDeps struct {
	auth      *mocks.MockAuthService
	catalog   *mocks.MockCatalogService
	scenarios *mocks.MockScenarioService
}

type routerOptions struct {
	auth        bool
	persistence bool
}

func newTestRouter(t *testing.T, opts routerOptions) (*gin.Engine, *testDeps) {
	t.Helper()

	deps := &testDeps{
		auth:      new(mocks.MockAuthService),
		catalog:   new(mocks.MockCatalogService),
		scenarios: new(mocks.MockScenarioService),
	}
	deps.auth.On("ValidateToken", mock.Anything, sellerToken).Return(&dto.Claims{Subject: "seller", Role: dto.RoleSeller}, nil).Maybe()
	deps.auth.On("ValidateToken", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidToken).Maybe()

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.CatalogService = deps.catalog
	cfg.ScenarioService = deps.scenarios
	cfg.PersistenceEnabled = opts.persistence
	if opts.auth {
		cfg.AuthService = deps.auth
	}

	t.Cleanup(func() {
		deps.catalog.AssertExpectations(t)
		deps.scenarios.AssertExpectations(t)
	})
	return NewRouter(NewHealthHandler(), cfg), deps
}

func doRequest(router *gin.Engine, method, path, body string, token string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var envelope struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	assert.NotEmpty(t, envelope.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name string
		cfg  RouterConfig
	}{
		{name: "default config", cfg: DefaultRouterConfig()},
		{name: "zero config", cfg: RouterConfig{}},
		{name: "rate limited", cfg: RouterConfig{RateLimit: 5, RateWindow: time.Second}},
		{name: "swagger behind basic auth", cfg: RouterConfig{SwaggerUser: "docs", SwaggerPass: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewRouter(NewHealthHandler(), tt.cfg))
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	router, _ := newTestRouter(t, routerOptions{})

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"healthz endpoint", http.MethodGet, "/healthz", http.StatusOK},
		{"readyz endpoint", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics endpoint", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger endpoint", http.MethodGet, "/swagger/index.html", http.StatusOK},
		{"containers endpoint", http.MethodGet, "/api/containers", http.StatusOK},
		{"quote endpoint without body", http.MethodPost, "/api/quotes", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, "", "")
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_RouteRegistration(t *testing.T) {
	tests := []struct {
		name       string
		opts       routerOptions
		wantRoutes []string
		noRoutes   []string
	}{
		{
			name:       "without persistence",
			opts:       routerOptions{auth: true},
			wantRoutes: []string{"GET /api/catalog", "POST /api/quotes", "POST /api/auth/login"},
			noRoutes:   []string{"PUT /api/catalog", "GET /api/scenarios", "POST /api/scenarios/:id/quote"},
		},
		{
			name: "with persistence",
			opts: routerOptions{auth: true, persistence: true},
			wantRoutes: []string{
				"PUT /api/catalog", "GET /api/catalog/history",
				"GET /api/scenarios", "POST /api/scenarios", "GET /api/scenarios/:id",
				"PUT /api/scenarios/:id", "DELETE /api/scenarios/:id", "POST /api/scenarios/:id/quote",
			},
		},
		{
			name:     "auth disabled has no login route",
			opts:     routerOptions{persistence: true},
			noRoutes: []string{"POST /api/auth/login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, tt.opts)

			registered := make(map[string]bool)
			for _, r := range router.Routes() {
				registered[r.Method+" "+r.Path] = true
			}
			for _, route := range tt.wantRoutes {
				assert.True(t, registered[route], "missing route %s", route)
			}
			for _, route := range tt.noRoutes {
				assert.False(t, registered[route], "unexpected route %s", route)
			}
		})
	}
}

func TestRouter_SellerRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t, routerOptions{auth: true, persistence: true})

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{"scenario list without token", http.MethodGet, "/api/scenarios", "", http.StatusUnauthorized},
		{"scenario list with bad token", http.MethodGet, "/api/scenarios", "forged", http.StatusUnauthorized},
		{"catalog save without token", http.MethodPut, "/api/catalog", "", http.StatusUnauthorized},
		{"catalog history without token", http.MethodGet, "/api/catalog/history", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, "", tt.token)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
