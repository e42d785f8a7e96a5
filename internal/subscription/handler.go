package subscription

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/api"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/auth"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
)

type Handler struct {
	service Service
	loc     *time.Location
}

func NewHandler(service Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

// ListPlans godoc
// @Summary      List purchasable packages
// @Tags         subscriptions
// @Produce      json
// @Success      200  {array}  Plan
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, Plans())
}

// WeekOptions godoc
// @Summary      List purchasable unlimited weeks
// @Description  Returns the upcoming week candidates; weeks already owned are flagged.
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   WeekOption
// @Failure      500  {object}  api.ErrorResponse
// @Router       /subscriptions/week-options [get]
func (h *Handler) WeekOptions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	options, err := h.service.WeekOptions(c.Request.Context(), userID)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// PurchaseWeek godoc
// @Summary      Purchase an unlimited week
// @Description  Creates a pending unlimited week subscription for the given Monday.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PurchaseWeekRequest  true  "Week start (Monday, YYYY-MM-DD)"
// @Success      201      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /subscriptions/weeks [post]
func (h *Handler) PurchaseWeek(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req PurchaseWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	weekStart, err := time.ParseInLocation("2006-01-02", req.WeekStart, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "week_start must be YYYY-MM-DD"})
		return
	}

	sub, err := h.service.PurchaseWeek(c.Request.Context(), userID, weekStart)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	logger.Infof("Unlimited week purchased: user=%d week=%s", userID, req.WeekStart)
	c.JSON(http.StatusCreated, sub)
}

// PurchasePack godoc
// @Summary      Purchase a standard class pack
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PurchasePackRequest  true  "Package type"
// @Success      201      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Router       /subscriptions/packs [post]
func (h *Handler) PurchasePack(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req PurchasePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.PurchasePack(c.Request.Context(), userID, PackageType(req.PackageType))
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ListMine godoc
// @Summary      List my subscriptions
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Subscription
// @Failure      500  {object}  api.ErrorResponse
// @Router       /subscriptions [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	subs, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}
