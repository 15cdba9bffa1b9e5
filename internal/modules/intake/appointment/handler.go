package appointment

import (
	"github.com/gin-gonic/gin"
	"github.com/lexofis/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg, admin *gin.RouterGroup) {
	rg.POST("/appointments", h.create)

	// ?order=created switches from the review-queue order to intake order
	admin.GET("/appointments", h.list)
	admin.PATCH("/appointments/:id", h.updateStatus)
}

func (h *Handler) list(c *gin.Context) {
	if c.Query("order") == "created" {
		response.OK(c, h.svc.List())
		return
	}
	response.OK(c, h.svc.ListByPreferredDate())
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateAppointmentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	appt, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, appt)
}

func (h *Handler) updateStatus(c *gin.Context) {
	var dto UpdateStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	appt, err := h.svc.UpdateStatus(c.Param("id"), dto.Status)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if appt == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, appt)
}
