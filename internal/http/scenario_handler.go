package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/metrics"
	"github.com/guttosm/container-quote/internal/middleware"
	"github.com/guttosm/container-quote/internal/service"
)

// ScenarioHandler provides HTTP handlers for saved scenarios.
type ScenarioHandler struct {
	scenarioService service.ScenarioService
	calculator      service.QuoteCalculator
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(scenarioService service.ScenarioService, calculator service.QuoteCalculator) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioService: scenarioService,
		calculator:      calculator,
	}
}

// ListScenarios handles GET /api/scenarios requests.
//
// @Summary      List scenarios
// @Description  Returns saved scenarios, most recently updated first.
// @Tags         Scenarios
// @Produce      json
// @Param        limit query int false "Maximum number of scenarios"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Scenario} "Scenarios"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      503 {object} dto.ErrorResponse "Store unavailable"
// @Security     BearerAuth
// @Router       /api/scenarios [get]
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scenarios, err := h.scenarioService.List(c.Request.Context(), queryLimit(c))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(scenarios)
}

// CreateScenario handles POST /api/scenarios requests.
//
// @Summary      Save a scenario
// @Description  Saves a named snapshot of container, catalog and pricing inputs. A blank name is rejected and nothing is written.
// @Tags         Scenarios
// @Accept       json
// @Produce      json
// @Param        request body dto.ScenarioRequest true "Scenario"
// @Success      201 {object} dto.SuccessResponse{data=model.Scenario} "Saved scenario"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      503 {object} dto.ErrorResponse "Store unavailable"
// @Security     BearerAuth
// @Router       /api/scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, snapshot, err := bindScenario(c)
	if err != nil {
		builder.Fail(err)
		return
	}

	scenario, err := h.scenarioService.Save(c.Request.Context(), req.Name, snapshot, savedBy(c))
	if err != nil {
		builder.Fail(err)
		return
	}

	c.Header("Location", "/api/scenarios/"+scenario.ID)
	builder.SuccessCreated(scenario)
}

// GetScenario handles GET /api/scenarios/:id requests.
//
// @Summary      Get a scenario
// @Tags         Scenarios
// @Produce      json
// @Param        id path string true "Scenario ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Scenario} "Scenario"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      404 {object} dto.ErrorResponse "Scenario not found"
// @Security     BearerAuth
// @Router       /api/scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scenario, err := h.scenarioService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(scenario)
}

// UpdateScenario handles PUT /api/scenarios/:id requests.
//
// @Summary      Overwrite a scenario
// @Description  Replaces the name and snapshot of an existing scenario and bumps its version.
// @Tags         Scenarios
// @Accept       json
// @Produce      json
// @Param        id path string true "Scenario ID"
// @Param        request body dto.ScenarioRequest true "Scenario"
// @Success      200 {object} dto.SuccessResponse{data=model.Scenario} "Updated scenario"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      404 {object} dto.ErrorResponse "Scenario not found"
// @Security     BearerAuth
// @Router       /api/scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, snapshot, err := bindScenario(c)
	if err != nil {
		builder.Fail(err)
		return
	}

	scenario, err := h.scenarioService.Update(c.Request.Context(), c.Param("id"), req.Name, snapshot, savedBy(c))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(scenario)
}

// DeleteScenario handles DELETE /api/scenarios/:id requests.
//
// @Summary      Delete a scenario
// @Tags         Scenarios
// @Param        id path string true "Scenario ID"
// @Success      204 "Deleted"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      404 {object} dto.ErrorResponse "Scenario not found"
// @Security     BearerAuth
// @Router       /api/scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	if err := h.scenarioService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// QuoteScenario handles POST /api/scenarios/:id/quote requests.
//
// @Summary      Quote a saved scenario
// @Description  Recomputes the quote of a saved snapshot. Passing view=customer returns the redacted customer view.
// @Tags         Scenarios
// @Produce      json
// @Param        id path string true "Scenario ID"
// @Param        view query string false "Force the customer view" Enums(customer, seller)
// @Success      200 {object} dto.SuccessResponse{data=dto.SellerQuoteView} "Quote"
// @Failure      401 {object} dto.ErrorResponse "Seller token required"
// @Failure      404 {object} dto.ErrorResponse "Scenario not found"
// @Failure      422 {object} dto.ErrorResponse "Snapshot cannot be priced"
// @Security     BearerAuth
// @Router       /api/scenarios/{id}/quote [post]
func (h *ScenarioHandler) QuoteScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scenario, err := h.scenarioService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}

	snapshot := scenario.Snapshot
	start := time.Now()
	quote, err := h.calculator.Quote(snapshot.ContainerType, snapshot.Catalog, snapshot.Pricing)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordQuoteCalculation(string(snapshot.ContainerType), 0, duration, quoteStatus(err))
		builder.Fail(err)
		return
	}

	metrics.RecordQuoteCalculation(string(snapshot.ContainerType), len(quote.Lines), duration, "success")
	builder.SuccessOK(dto.NewQuoteView(quote, middleware.ResolveViewMode(c)))
}

func bindScenario(c *gin.Context) (*dto.ScenarioRequest, model.Snapshot, error) {
	req, err := BuildRequestAndValidate[dto.ScenarioRequest](c)
	if err != nil {
		return nil, model.Snapshot{}, err
	}
	snapshot, err := req.Snapshot()
	if err != nil {
		return nil, model.Snapshot{}, err
	}
	return req, snapshot, nil
}
