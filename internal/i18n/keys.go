// Package i18n provides internationalization support for the container quote service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyValidation indicates a payload field failed validation.
	ErrKeyValidation = "error.validation"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates a wrong seller username or password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyContractViolation indicates catalog or pricing inputs the engine refuses to price.
	ErrKeyContractViolation = "error.contract_violation"
	// ErrKeyUnsupportedFormula indicates a pricing context written by another formula version.
	ErrKeyUnsupportedFormula = "error.unsupported_formula_version"
	// ErrKeyUnsupportedContainer indicates an unknown container type.
	ErrKeyUnsupportedContainer = "error.unsupported_container"
	// ErrKeyScenarioNotFound indicates no scenario matches the id.
	ErrKeyScenarioNotFound = "error.scenario_not_found"
	// ErrKeyProductNotFound indicates the session has no product with the id.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyStoreUnavailable indicates the document store cannot be reached.
	ErrKeyStoreUnavailable = "error.store_unavailable"
	// ErrKeyPersistenceDisabled indicates the service runs without a document store.
	ErrKeyPersistenceDisabled = "error.persistence_disabled"
)
