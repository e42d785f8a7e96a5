package reservation

import (
	"net/http"
	"strconv"

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

// Book godoc
// @Summary      Book a class
// @Description  Reserves a spot in a class under the caller's active package.
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      BookRequest  true  "Class and optional bike"
// @Success      201      {object}  Reservation
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /reservations [post]
func (h *Handler) Book(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	rsv, err := h.service.Book(c.Request.Context(), userID, req)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rsv)
}

// Cancel godoc
// @Summary      Cancel a reservation
// @Description  Cancels the caller's reservation; refund eligibility follows the package's cancellation policy.
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        reservationID  path      int            true   "Reservation ID"
// @Param        request        body      CancelRequest  false  "Optional reason"
// @Success      200            {object}  CancellationDecision
// @Failure      404            {object}  api.ErrorResponse
// @Failure      409            {object}  api.ErrorResponse
// @Router       /reservations/{reservationID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	reservationID, err := strconv.Atoi(c.Param("reservationID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	var req CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
	}

	decision, err := h.service.Cancel(c.Request.Context(), userID, reservationID, req.Reason)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// ListMine godoc
// @Summary      List my reservations
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   ReservationWithDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /reservations [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListByClass godoc
// @Summary      List reservations for a class
// @Description  Attendance roster for one class occurrence. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      int  true  "Class ID"
// @Success      200      {array}   ReservationWithDetails
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/classes/{classID}/reservations [get]
func (h *Handler) ListByClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	list, err := h.service.ListByClass(c.Request.Context(), classID)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// MarkAttended godoc
// @Summary      Mark a reservation attended
// @Description  Records attendance for a confirmed reservation. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        reservationID  path      int  true  "Reservation ID"
// @Success      200            {object}  api.MessageResponse
// @Failure      404            {object}  api.ErrorResponse
// @Failure      409            {object}  api.ErrorResponse
// @Router       /admin/reservations/{reservationID}/attended [post]
func (h *Handler) MarkAttended(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("reservationID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	if err := h.service.MarkAttended(c.Request.Context(), reservationID); err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Attendance recorded"})
}

// ApplyNoShowPenalty godoc
// @Summary      Record a no-show
// @Description  Marks a missed reservation as a no-show and applies the unlimited week penalty. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        reservationID  path      int  true  "Reservation ID"
// @Success      200            {object}  CascadePlan
// @Failure      404            {object}  api.ErrorResponse
// @Failure      409            {object}  api.ErrorResponse
// @Failure      422            {object}  api.ErrorResponse
// @Router       /admin/reservations/{reservationID}/no-show [post]
func (h *Handler) ApplyNoShowPenalty(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("reservationID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	plan, err := h.service.ApplyNoShowPenalty(c.Request.Context(), reservationID)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
