package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/metrics"
	"github.com/guttosm/container-quote/internal/middleware"
	"github.com/guttosm/container-quote/internal/service"
)

// QuoteHandler provides HTTP handlers for quote routes.
type QuoteHandler struct {
	calculator       service.QuoteCalculator
	catalog          *catalogLoader
	defaultContainer model.ContainerType
}

// QuoteHandlerOption configures a QuoteHandler.
type QuoteHandlerOption func(*QuoteHandler)

// WithCatalogCacheTTL sets how long the active catalog is served from memory.
func WithCatalogCacheTTL(ttl time.Duration) QuoteHandlerOption {
	return func(h *QuoteHandler) {
		h.catalog.cache = newCatalogCache(ttl)
	}
}

// WithDefaultContainer sets the container quoted when a request names none.
func WithDefaultContainer(container model.ContainerType) QuoteHandlerOption {
	return func(h *QuoteHandler) {
		if container != "" {
			h.defaultContainer = container
		}
	}
}

// NewQuoteHandler creates a new QuoteHandler. catalogService may be nil, in
// which case requests without products are quoted against the default catalog.
func NewQuoteHandler(calculator service.QuoteCalculator, catalogService service.CatalogService, opts ...QuoteHandlerOption) *QuoteHandler {
	h := &QuoteHandler{
		calculator:       calculator,
		catalog:          newCatalogLoader(catalogService, defaultCatalogCacheTTL),
		defaultContainer: model.ContainerFortyHighCube,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// InvalidateCatalogCache drops the cached catalog.
func (h *QuoteHandler) InvalidateCatalogCache() {
	h.catalog.cache.invalidate()
}

// Quote handles POST /api/quotes requests.
//
// @Summary      Quote a container
// @Description  Allocates the active products into the container, prices every line and summarizes the container. When products are omitted the active catalog is quoted. Sellers receive the full breakdown; everyone else, or a seller passing view=customer, receives the customer view without factory prices, margins, expenses or profit.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Container, products and pricing inputs"
// @Param        view query string false "Force the customer view" Enums(customer, seller)
// @Param        Authorization header string false "Bearer token of the seller"
// @Success      200 {object} dto.SuccessResponse{data=dto.SellerQuoteView} "Seller view; the customer view has the shape of dto.CustomerQuoteView"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure      422 {object} dto.ErrorResponse "Contract violation"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      503 {object} dto.ErrorResponse "Catalog store unavailable"
// @Router       /api/quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		metrics.RecordQuoteCalculation("unknown", 0, 0, "validation_error")
		builder.Fail(err)
		return
	}

	container := req.ContainerType
	if container == "" {
		container = h.defaultContainer
	}

	var products []model.Product
	if len(req.Products) > 0 {
		products, err = dto.ProductsToModel(req.Products)
	} else {
		var entry *cachedCatalog
		entry, err = h.catalog.load(c.Request.Context())
		if entry != nil {
			products = entry.version.Products
		}
	}
	if err != nil {
		metrics.RecordQuoteCalculation(h.containerLabel(container), 0, 0, quoteStatus(err))
		builder.Fail(err)
		return
	}

	start := time.Now()
	quote, err := h.calculator.Quote(container, products, req.Pricing)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordQuoteCalculation(h.containerLabel(container), 0, duration, quoteStatus(err))
		builder.Fail(err)
		return
	}

	metrics.RecordQuoteCalculation(string(container), len(quote.Lines), duration, "success")
	builder.SuccessOK(dto.NewQuoteView(quote, middleware.ResolveViewMode(c)))
}

// SwitchAllocationMode handles POST /api/quotes/allocation-mode requests.
//
// @Summary      Switch a product's allocation mode
// @Description  Converts one product of a draft session between mix percent and fixed quantity using the capacity of the session's container, and returns the updated session.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.AllocationModeRequest true "Draft session, product and target mode"
// @Success      200 {object} dto.SuccessResponse{data=model.Session} "Updated session"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Product not in the session"
// @Failure      422 {object} dto.ErrorResponse "Unsupported container"
// @Router       /api/quotes/allocation-mode [post]
func (h *QuoteHandler) SwitchAllocationMode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AllocationModeRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	draft, err := req.Session.ToModel()
	if err != nil {
		builder.Fail(err)
		return
	}

	session, err := h.calculator.SwitchAllocationMode(draft, req.ProductID, req.Mode)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(session)
}

// Containers handles GET /api/containers requests.
//
// @Summary      List container types
// @Description  Returns the supported container types and their usable capacity in cubic meters.
// @Tags         Quotes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.ContainerSpec} "Supported containers"
// @Router       /api/containers [get]
func (h *QuoteHandler) Containers(c *gin.Context) {
	catalog := h.calculator.Containers()
	specs := make([]model.ContainerSpec, 0, len(catalog))
	for _, t := range catalog.Types() {
		specs = append(specs, model.ContainerSpec{Type: t, CapacityCBM: catalog[t]})
	}
	NewResponseBuilder(c).SuccessOK(specs)
}

// containerLabel keeps the container_type label bounded to configured types.
func (h *QuoteHandler) containerLabel(container model.ContainerType) string {
	if _, err := h.calculator.Containers().Capacity(container); err != nil {
		return "unsupported"
	}
	return string(container)
}

func quoteStatus(err error) string {
	var validationErr *dto.ValidationError
	var contractErr *model.ContractError
	switch {
	case errors.As(err, &validationErr):
		return "validation_error"
	case errors.As(err, &contractErr), errors.Is(err, model.ErrUnsupportedFormulaVersion):
		return "contract_violation"
	default:
		return "error"
	}
}
