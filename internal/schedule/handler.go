package schedule

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/api"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListUpcoming godoc
// @Summary      List upcoming classes
// @Description  Returns scheduled classes from today onward with current availability.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   ScheduledClass
// @Failure      500  {object}  api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListUpcoming(c *gin.Context) {
	classes, err := h.service.ListUpcoming(c.Request.Context())
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// GetClass godoc
// @Summary      Get one class
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      int  true  "Class ID"
// @Success      200      {object}  ScheduledClass
// @Failure      404      {object}  api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	class, err := h.service.GetByID(c.Request.Context(), classID)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}

// CreateClass godoc
// @Summary      Create a class
// @Description  Schedules a new class occurrence. Admin only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateClassRequest  true  "Class details"
// @Success      201      {object}  ScheduledClass
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		api.RenderError(c, err)
		return
	}

	logger.Infof("Class scheduled: %s on %s at %s", class.Name, req.ClassDate, req.StartTime)
	c.JSON(http.StatusCreated, class)
}
