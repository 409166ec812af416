package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// InfoHandler handles HTTP requests for eligibility profile submissions.
type InfoHandler struct {
	service ports.ProfileService
}

func NewInfoHandler(service ports.ProfileService) *InfoHandler {
	return &InfoHandler{service: service}
}

// --- Request / Response types ---

type submitInfoRequest struct {
	FullName      string  `json:"full_name" validate:"required"`
	Age           int     `json:"age" validate:"omitempty,gte=0"`
	BankAccountNo string  `json:"bank_account_no"`
	AadhaarNo     string  `json:"aadhaar_no" validate:"required"`
	PhoneNumber   string  `json:"phone_number"`
	AnnualIncome  float64 `json:"annual_income" validate:"omitempty,gte=0"`
}

type submitInfoResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Submit records a new eligibility snapshot for the caller. Submissions are
// append-only; the newest one wins for every downstream read.
//
// @Summary      Submit eligibility information
// @Tags         info
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitInfoRequest  true  "Eligibility details"
// @Success      201   {object}  submitInfoResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /info/submit [post]
func (h *InfoHandler) Submit(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitInfoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Submit(c.Request().Context(), ports.SubmitInfoInput{
		Email:         email,
		FullName:      req.FullName,
		Age:           req.Age,
		BankAccountNo: req.BankAccountNo,
		AadhaarNo:     req.AadhaarNo,
		PhoneNumber:   req.PhoneNumber,
		AnnualIncome:  req.AnnualIncome,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitInfoResponse{
		ID:      profile.ID,
		Message: "information saved",
	})
}

// Me returns the caller's most recent eligibility submission. A caller who
// never submitted gets an empty object, not a 404: the portal renders a
// blank form from it.
//
// @Summary      Get own latest eligibility information
// @Tags         info
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.EligibilityProfile
// @Failure      401  {object}  map[string]string
// @Router       /info/me [get]
func (h *InfoHandler) Me(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Latest(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if profile == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{})
	}
	return c.JSON(http.StatusOK, profile)
}
