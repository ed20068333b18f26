//go:build !integration

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-quote/internal/domain/dto"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		status        int
		claims        *dto.Claims
		expectedLevel string
	}{
		{name: "2xx logs info", status: http.StatusOK, expectedLevel: "info"},
		{name: "3xx logs info", status: http.StatusMovedPermanently, expectedLevel: "info"},
		{name: "4xx logs warn", status: http.StatusNotFound, expectedLevel: "warn"},
		{name: "5xx logs error", status: http.StatusServiceUnavailable, expectedLevel: "error"},
		{name: "seller subject is logged", status: http.StatusOK, claims: sellerClaims, expectedLevel: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := log.Logger
			defer func() { log.Logger = original }()
			var buf bytes.Buffer
			log.Logger = zerolog.New(&buf)

			router := gin.New()
			router.Use(RequestID(), func(c *gin.Context) {
				if tt.claims != nil {
					c.Set(ClaimsKey, tt.claims)
				}
				c.Next()
			}, RequestLogger())
			router.GET("/api/catalog", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "/api/catalog", entry["path"])
			assert.Equal(t, float64(tt.status), entry["status_code"])
			assert.NotEmpty(t, entry["request_id"])
			if tt.claims != nil {
				assert.Equal(t, "seller", entry["seller"])
			} else {
				assert.NotContains(t, entry, "seller")
			}
		})
	}
}
