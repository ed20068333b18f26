// Package i18n provides internationalization support for the container quote service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":             "Invalid request",
			"error.invalid_request_body":        "Invalid request body",
			"error.validation":                  "One or more fields are invalid",
			"error.internal_error":              "An unexpected error occurred",
			"error.unauthorized":                "Unauthorized",
			"error.invalid_credentials":         "Invalid username or password",
			"error.forbidden":                   "Forbidden",
			"error.not_found":                   "Not found",
			"error.rate_limit_exceeded":         "Too many requests, please try again later",
			"error.invalid_token":               "Invalid or expired token",
			"error.token_required":              "Authentication token is required",
			"error.timeout":                     "The request took too long",
			"error.contract_violation":          "The catalog or pricing inputs cannot be priced",
			"error.unsupported_formula_version": "The pricing inputs were saved by an unsupported formula version",
			"error.unsupported_container":       "Unsupported container type",
			"error.scenario_not_found":          "Scenario not found",
			"error.product_not_found":           "Product not found in the draft",
			"error.store_unavailable":           "The scenario store is unavailable, please try again later",
			"error.persistence_disabled":        "Persistence is not configured on this server",
		},
		"pt": {
			"error.invalid_request":             "Requisição inválida",
			"error.invalid_request_body":        "Corpo da requisição inválido",
			"error.validation":                  "Um ou mais campos são inválidos",
			"error.internal_error":              "Ocorreu um erro inesperado",
			"error.unauthorized":                "Não autorizado",
			"error.invalid_credentials":         "Usuário ou senha inválidos",
			"error.forbidden":                   "Proibido",
			"error.not_found":                   "Não encontrado",
			"error.rate_limit_exceeded":         "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":               "Token inválido ou expirado",
			"error.token_required":              "Token de autenticação é obrigatório",
			"error.timeout":                     "A requisição demorou demais",
			"error.contract_violation":          "O catálogo ou os parâmetros de preço não podem ser calculados",
			"error.unsupported_formula_version": "Os parâmetros de preço foram salvos por uma versão de fórmula não suportada",
			"error.unsupported_container":       "Tipo de contêiner não suportado",
			"error.scenario_not_found":          "Cenário não encontrado",
			"error.product_not_found":           "Produto não encontrado no rascunho",
			"error.store_unavailable":           "O armazenamento de cenários está indisponível, tente novamente mais tarde",
			"error.persistence_disabled":        "A persistência não está configurada neste servidor",
		},
		"es": {
			"error.invalid_request":             "Solicitud inválida",
			"error.invalid_request_body":        "Cuerpo de la solicitud inválido",
			"error.validation":                  "Uno o más campos son inválidos",
			"error.internal_error":              "Ocurrió un error inesperado",
			"error.unauthorized":                "No autorizado",
			"error.invalid_credentials":         "Usuario o contraseña inválidos",
			"error.forbidden":                   "Prohibido",
			"error.not_found":                   "No encontrado",
			"error.rate_limit_exceeded":         "Demasiadas solicitudes, inténtelo más tarde",
			"error.invalid_token":               "Token inválido o expirado",
			"error.token_required":              "Se requiere un token de autenticación",
			"error.timeout":                     "La solicitud tardó demasiado",
			"error.contract_violation":          "El catálogo o los parámetros de precio no se pueden calcular",
			"error.unsupported_formula_version": "Los parámetros de precio fueron guardados por una versión de fórmula no soportada",
			"error.unsupported_container":       "Tipo de contenedor no soportado",
			"error.scenario_not_found":          "Escenario no encontrado",
			"error.product_not_found":           "Producto no encontrado en el borrador",
			"error.store_unavailable":           "El almacenamiento de escenarios no está disponible, inténtelo más tarde",
			"error.persistence_disabled":        "La persistencia no está configurada en este servidor",
		},
	}
}
