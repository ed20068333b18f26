package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/middleware"
	"github.com/guttosm/container-quote/internal/service"
)

// CatalogHandler provides HTTP handlers for the shared product catalog.
type CatalogHandler struct {
	catalogService service.CatalogService
	loader         *catalogLoader
}

// CatalogResponse is the active catalog together with its origin.
//
// @Description Active product catalog
type CatalogResponse struct {
	Products []dto.ProductPayload `json:"products"`
	Version  int                  `json:"version" example:"3"`
	// Source is "store" for a saved catalog and "default" for the built-in one.
	Source    string `json:"source" example:"store"`
	UpdatedBy string `json:"updated_by,omitempty" example:"seller"`
} // @name CatalogResponse

// NewCatalogHandler creates a new CatalogHandler. Reads go through the
// quote handler's catalog cache and saves refresh it.
func NewCatalogHandler(catalogService service.CatalogService, quotes *QuoteHandler) *CatalogHandler {
	loader := newCatalogLoader(catalogService, defaultCatalogCacheTTL)
	if quotes != nil {
		loader = quotes.catalog
	}
	return &CatalogHandler{catalogService: catalogService, loader: loader}
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      Get the active catalog
// @Description  Returns the last saved catalog, or the built-in default catalog when none has been saved or the store is unavailable.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=CatalogResponse} "Active catalog"
// @Failure      500 {object} dto.ErrorResponse "Catalog could not be loaded"
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entry, err := h.loader.load(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(newCatalogResponse(entry))
}

// UpdateCatalog handles PUT /api/catalog requests.
//
// @Summary      Save the catalog
// @Description  Replaces the shared catalog with a new version. Products without an id are assigned one.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateCatalogRequest true "Complete product list"
// @Success      200 {object} dto.SuccessResponse{data=CatalogResponse} "Saved catalog"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      503 {object} dto.ErrorResponse "Store unavailable"
// @Security     BearerAuth
// @Router       /api/catalog [put]
func (h *CatalogHandler) UpdateCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateCatalogRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	products, err := dto.ProductsToModel(req.Products)
	if err != nil {
		builder.Fail(err)
		return
	}

	version, err := h.catalogService.Save(c.Request.Context(), products, savedBy(c))
	if err != nil {
		builder.Fail(err)
		return
	}

	entry := &cachedCatalog{version: version, source: service.CatalogSourceStore}
	h.loader.cache.replace(entry)
	builder.SuccessOK(newCatalogResponse(entry))
}

// ListCatalogHistory handles GET /api/catalog/history requests.
//
// @Summary      List catalog versions
// @Description  Returns saved catalog versions, newest first.
// @Tags         Catalog
// @Produce      json
// @Param        limit query int false "Maximum number of versions" default(20)
// @Success      200 {object} dto.SuccessResponse{data=[]model.CatalogVersion} "Catalog versions"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      503 {object} dto.ErrorResponse "Store unavailable"
// @Security     BearerAuth
// @Router       /api/catalog/history [get]
func (h *CatalogHandler) ListCatalogHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	versions, err := h.catalogService.History(c.Request.Context(), queryLimit(c))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(versions)
}

func newCatalogResponse(entry *cachedCatalog) CatalogResponse {
	return CatalogResponse{
		Products:  dto.NewProductPayloads(entry.version.Products),
		Version:   entry.version.Version,
		Source:    entry.source,
		UpdatedBy: entry.version.CreatedBy,
	}
}

// savedBy names the seller responsible for a write.
func savedBy(c *gin.Context) string {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.Subject
	}
	return ""
}
