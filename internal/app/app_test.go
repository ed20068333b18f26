//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-quote/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "auth disabled without database",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080", RateLimit: 100, RateWindow: time.Minute},
			},
		},
		{
			name: "auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth:   config.AuthConfig{Enabled: true, SellerUsername: "seller", JWTSecretKey: "test-secret"},
			},
		},
		{
			name: "custom containers",
			cfg: config.Config{
				Pricing: config.PricingConfig{Containers: map[string]float64{"40hc": 68}, DefaultContainer: "40hc"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := InitializeApp(tt.cfg)
			require.NotNil(t, application)
			assert.NotNil(t, application.Router)
			assert.Nil(t, application.Database)
			assert.NoError(t, application.Close(context.Background()))
		})
	}
}

func TestInitializeApp_QuotesDefaultCatalog(t *testing.T) {
	application := InitializeApp(config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(`{"pricing":{"exchange_rate":3.2}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"view":"seller"`)
}
