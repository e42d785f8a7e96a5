package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/api"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Webhook godoc
// @Summary      Payment provider callback
// @Description  Confirms a payment and activates the subscription. Safe to replay.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      ConfirmRequest  true  "Provider callback"
// @Success      200      {object}  Payment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /payments/webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Confirm(c.Request.Context(), req)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListMine godoc
// @Summary      List my payments
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Payment
// @Failure      500  {object}  api.ErrorResponse
// @Router       /payments [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
