package http

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/i18n"
	"github.com/guttosm/container-quote/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	resp.TraceID = ""
	errorResponsePool.Put(resp)
}

// Validator is implemented by request payloads that check themselves after binding.
type Validator interface {
	Validate() error
}

// errInvalidBody marks a request whose JSON could not be decoded.
var errInvalidBody = errors.New("invalid request body")

// BuildRequestAndValidate binds the JSON body into T and validates it when T
// implements Validator. Decode failures wrap errInvalidBody.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.Join(errInvalidBody, err)
	}
	if validator, ok := any(&req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// queryLimit reads the optional ?limit= parameter. Non-numeric or
// non-positive values yield 0, which lets the service apply its default.
func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// ResponseBuilder writes the success and error envelopes of the API.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the DTO can go back to the pool afterwards.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, messageKey, nil, err)
}

// Fail maps err to its status and message and aborts the request. Field
// level failures are reported in Details so a form can highlight them.
func (b *ResponseBuilder) Fail(err error) {
	if errors.Is(err, errInvalidBody) {
		b.abort(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil, err)
		return
	}

	status, key := middleware.ErrorStatus(err)

	var details map[string]string
	var validationErr *dto.ValidationError
	var contractErr *model.ContractError
	switch {
	case errors.As(err, &validationErr):
		details = map[string]string{validationErr.Field: validationErr.Message}
	case errors.As(err, &contractErr):
		field := contractErr.Field
		if contractErr.ProductID != "" {
			field = contractErr.ProductID + "." + field
		}
		details = map[string]string{field: contractErr.Message}
	}

	b.abort(status, key, details, err)
}

func (b *ResponseBuilder) abort(statusCode int, messageKey string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// The error handler middleware logs whatever lands in c.Errors.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
