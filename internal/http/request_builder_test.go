package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-quote/internal/circuitbreaker"
	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/i18n"
	"github.com/guttosm/container-quote/internal/middleware"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.RequestID()(c)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantInvalid bool
		wantField   string
	}{
		{
			name: "valid request",
			body: `{"container_type":"40hc","pricing":{"exchange_rate":5.2}}`,
		},
		{
			name:        "malformed JSON",
			body:        `{"container_type":`,
			wantInvalid: true,
		},
		{
			name:      "fails validation",
			body:      `{"container_type":"40hc","pricing":{"exchange_rate":0}}`,
			wantField: "pricing.exchange_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/api/quotes", tt.body)

			req, err := BuildRequestAndValidate[dto.QuoteRequest](c)

			switch {
			case tt.wantInvalid:
				assert.ErrorIs(t, err, errInvalidBody)
				assert.Nil(t, req)
			case tt.wantField != "":
				var validationErr *dto.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
			default:
				require.NoError(t, err)
				assert.Equal(t, model.ContainerFortyHighCube, req.ContainerType)
				assert.Equal(t, 5.2, req.Pricing.ExchangeRate)
			}
		})
	}
}

func TestQueryLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"?limit=20", 20},
		{"?limit=-1", 0},
		{"?limit=abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/api/scenarios"+tt.query, "")
			assert.Equal(t, tt.want, queryLimit(c))
		})
	}
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		data       interface{}
	}{
		{"ok with container spec", http.StatusOK, model.ContainerSpec{Type: model.ContainerTwentyFoot, CapacityCBM: 28.2}},
		{"created", http.StatusCreated, map[string]string{"id": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "/test", "")

			NewResponseBuilder(c).Success(tt.statusCode, tt.data)

			var resp dto.SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.statusCode, w.Code)
			assert.NotEmpty(t, resp.RequestID)
			assert.NotZero(t, resp.Timestamp)
			assert.NotNil(t, resp.Data)
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")

	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "Invalid request", resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	assert.True(t, c.IsAborted())
}

func TestResponseBuilder_Fail(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		locale         string
		expectedStatus int
		expectedCode   string
		expectedMsg    string
		expectedDetail map[string]string
	}{
		{
			name:           "invalid body",
			err:            errors.Join(errInvalidBody, errors.New("unexpected EOF")),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
			expectedMsg:    "Invalid request body",
		},
		{
			name:           "validation error carries the field",
			err:            dto.ErrBlankScenarioName,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
			expectedDetail: map[string]string{"name": "must not be blank"},
		},
		{
			name:           "contract error carries the product",
			err:            &model.ContractError{ProductID: "mug", Field: "units_per_carton", Message: "must be positive"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodeContractViolation,
			expectedDetail: map[string]string{"mug.units_per_carton": "must be positive"},
		},
		{
			name:           "open circuit is translated",
			err:            circuitbreaker.ErrCircuitOpen,
			locale:         "pt-BR",
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   dto.ErrCodeUnavailable,
			expectedMsg:    "O armazenamento de cenários está indisponível, tente novamente mais tarde",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/", "")
			if tt.locale != "" {
				c.Request.Header.Set("Accept-Language", tt.locale)
			}

			NewResponseBuilder(c).Fail(tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
			assert.Equal(t, tt.expectedDetail, resp.Details)
			require.Len(t, c.Errors, 1)
		})
	}
}
