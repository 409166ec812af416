package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

// ChatHandler proxies citizen questions to the assistant backend.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Complete forwards a question to the chat-completion provider and returns
// the reply verbatim.
//
// @Summary      Ask the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Citizen question"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) Complete(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.service.Complete(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
