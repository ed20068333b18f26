package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/circuitbreaker"
	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/i18n"
	"github.com/guttosm/container-quote/internal/logger"
	"github.com/guttosm/container-quote/internal/service"
)

// ErrorStatus maps a domain error to its HTTP status and i18n message key.
func ErrorStatus(err error) (int, string) {
	var validationErr *dto.ValidationError
	var contractErr *model.ContractError

	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, i18n.ErrKeyValidation
	case errors.Is(err, model.ErrUnsupportedFormulaVersion):
		return http.StatusUnprocessableEntity, i18n.ErrKeyUnsupportedFormula
	case errors.As(err, &contractErr):
		if contractErr.Field == "container_type" {
			return http.StatusUnprocessableEntity, i18n.ErrKeyUnsupportedContainer
		}
		return http.StatusUnprocessableEntity, i18n.ErrKeyContractViolation
	case errors.Is(err, service.ErrScenarioNotFound):
		return http.StatusNotFound, i18n.ErrKeyScenarioNotFound
	case errors.Is(err, model.ErrProductNotFound):
		return http.StatusNotFound, i18n.ErrKeyProductNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidToken
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		return http.StatusServiceUnavailable, i18n.ErrKeyPersistenceDisabled
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// ErrorHandler returns a middleware that logs gin context errors and writes
// an error envelope for handlers that recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		status, key := ErrorStatus(err.Err)
		if c.Writer.Written() {
			status = c.Writer.Status()
		}

		event := logger.For("http").Warn()
		if status >= http.StatusInternalServerError {
			event = logger.For("http").Error()
		}
		event.
			Str("request_id", requestID).
			Err(err.Err).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeFromStatus(status), message).
				WithRequestID(requestID)
			c.JSON(status, errorResp)
		}
	}
}
