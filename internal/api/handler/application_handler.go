package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// ApplicationHandler handles the citizen-facing application endpoints.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// --- Request / Response types ---

type submitApplicationRequest struct {
	SchemeID string                 `json:"scheme_id" validate:"required"`
	Details  map[string]interface{} `json:"details"`
}

type submitApplicationResponse struct {
	ID             string `json:"id"`
	SchemeName     string `json:"scheme_name"`
	Status         string `json:"status"`
	SubmissionDate string `json:"submission_date"`
}

type generateMessageRequest struct {
	SchemeID string `json:"scheme_id" validate:"required"`
}

type generateMessageResponse struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

// Apply submits a new application. Whatever status or timestamp the payload
// carries is discarded; every application starts Pending with a server-side
// submission time.
//
// @Summary      Apply to a welfare scheme
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitApplicationRequest  true  "Application details"
// @Success      201   {object}  submitApplicationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /applications/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		Email:    email,
		SchemeID: req.SchemeID,
		Details:  req.Details,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitApplicationResponse{
		ID:             result.ID,
		SchemeName:     result.SchemeName,
		Status:         string(result.Status),
		SubmissionDate: result.SubmissionDate.UTC().Format("2006-01-02T15:04:05Z"),
	})
}

// MyApplications lists the caller's applications, newest first.
//
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Application
// @Failure      401  {object}  map[string]string
// @Router       /applications/my-applications [get]
func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	applications, err := h.service.ListMine(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applications)
}

// GenerateMessage composes the ready-to-send outreach text for a scheme from
// the caller's latest eligibility data.
//
// @Summary      Generate an application outreach message
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateMessageRequest  true  "Target scheme"
// @Success      200   {object}  generateMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /applications/generate-message [post]
func (h *ApplicationHandler) GenerateMessage(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req generateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.service.GenerateMessage(c.Request().Context(), email, req.SchemeID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, generateMessageResponse{
		Message: msg.Message,
		Phone:   msg.Phone,
	})
}
