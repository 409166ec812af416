package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// AdminHandler handles the role-gated back-office endpoints. Role checks
// happen in the RBAC middleware; handlers only read the reviewer identity.
type AdminHandler struct {
	service ports.ReviewService
}

func NewAdminHandler(service ports.ReviewService) *AdminHandler {
	return &AdminHandler{service: service}
}

// --- Request / Response types ---

type pendingApplicationResponse struct {
	ID               string                  `json:"id"`
	SchemeID         string                  `json:"scheme_id"`
	SchemeName       string                  `json:"scheme_name"`
	ApplicantName    string                  `json:"applicant_name"`
	UserID           string                  `json:"user_id"`
	Status           string                  `json:"status"`
	SubmissionDate   string                  `json:"submission_date"`
	ApplicantDetails domain.ApplicantDetails `json:"applicant_details"`
}

type reviewResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statsResponse struct {
	TotalCitizens int64 `json:"total_citizens"`
	TotalSchemes  int64 `json:"total_schemes"`
	TotalPending  int64 `json:"total_pending"`
}

type purgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// Stats returns the dashboard counters.
//
// @Summary      Back-office dashboard counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		TotalCitizens: stats.TotalCitizens,
		TotalSchemes:  stats.TotalSchemes,
		TotalPending:  stats.TotalPending,
	})
}

// Users lists every citizen account.
//
// @Summary      List citizen accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	citizens, err := h.service.ListCitizens(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, citizens)
}

// PendingApplications lists every application still awaiting review, each
// joined with the freshest applicant data available.
//
// @Summary      List pending applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   pendingApplicationResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/applications/pending [get]
func (h *AdminHandler) PendingApplications(c echo.Context) error {
	pending, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]pendingApplicationResponse, 0, len(pending))
	for _, p := range pending {
		resp = append(resp, pendingApplicationResponse{
			ID:               p.Application.ID,
			SchemeID:         p.Application.SchemeID,
			SchemeName:       p.Application.SchemeName,
			ApplicantName:    p.Application.ApplicantName,
			UserID:           p.Application.UserID,
			Status:           string(p.Application.Status),
			SubmissionDate:   p.Application.SubmissionDate.UTC().Format("2006-01-02T15:04:05Z"),
			ApplicantDetails: p.ApplicantDetails,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Verify marks a pending application as verified.
//
// @Summary      Verify an application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  reviewResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/verify-application/{id} [post]
func (h *AdminHandler) Verify(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.Verify(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewResponse{
		ID:      result.ID,
		Status:  string(result.Status),
		Message: "application verified",
	})
}

// Reject marks a pending application as rejected.
//
// @Summary      Reject an application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  reviewResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/reject-application/{id} [post]
func (h *AdminHandler) Reject(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.Reject(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewResponse{
		ID:      result.ID,
		Status:  string(result.Status),
		Message: "application rejected",
	})
}

// PurgeApplications deletes the entire application ledger. Administrative
// reset for officials and admins, kept on a separate route from the
// per-record review transitions.
//
// @Summary      Delete all applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  purgeResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/applications [delete]
func (h *AdminHandler) PurgeApplications(c echo.Context) error {
	deleted, err := h.service.PurgeAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purgeResponse{Deleted: deleted})
}
