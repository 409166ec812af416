package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// SchemeHandler handles HTTP requests for the welfare scheme catalog.
type SchemeHandler struct {
	service ports.SchemeService
}

func NewSchemeHandler(service ports.SchemeService) *SchemeHandler {
	return &SchemeHandler{service: service}
}

// --- Request / Response types ---

type createSchemeRequest struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	BeneficiaryCategory []string `json:"beneficiary_category"`
	EligibilityCriteria string   `json:"eligibility_criteria"`
	DocumentsRequired   []string `json:"documents_required"`
	Benefits            string   `json:"benefits"`
	ApplicationProcess  string   `json:"application_process"`
	Department          string   `json:"department"`
}

// Create adds a scheme to the catalog. Admin only.
//
// @Summary      Create a welfare scheme
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSchemeRequest  true  "Scheme details"
// @Success      201   {object}  domain.Scheme
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /schemes [post]
func (h *SchemeHandler) Create(c echo.Context) error {
	var req createSchemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scheme, err := h.service.Create(c.Request().Context(), ports.CreateSchemeInput{
		Name:                req.Name,
		Description:         req.Description,
		BeneficiaryCategory: req.BeneficiaryCategory,
		EligibilityCriteria: req.EligibilityCriteria,
		DocumentsRequired:   req.DocumentsRequired,
		Benefits:            req.Benefits,
		ApplicationProcess:  req.ApplicationProcess,
		Department:          req.Department,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, scheme)
}

// List returns the full catalog, optionally translated via the language
// query parameter.
//
// @Summary      List welfare schemes
// @Tags         schemes
// @Produce      json
// @Param        language  query     string  false  "Target language code (default en)"
// @Success      200       {array}   domain.Scheme
// @Router       /schemes [get]
func (h *SchemeHandler) List(c echo.Context) error {
	language := c.QueryParam("language")

	schemes, err := h.service.List(c.Request().Context(), language)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schemes)
}

// Get returns a single scheme by id.
//
// @Summary      Get a welfare scheme
// @Tags         schemes
// @Produce      json
// @Param        id   path      string  true  "Scheme id"
// @Success      200  {object}  domain.Scheme
// @Failure      404  {object}  map[string]string
// @Router       /schemes/{id} [get]
func (h *SchemeHandler) Get(c echo.Context) error {
	scheme, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scheme)
}
