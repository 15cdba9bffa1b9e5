package practicearea

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/practice-areas", h.list)
	rg.GET("/practice-areas/:slug", h.getBySlug)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

func (h *Handler) getBySlug(c *gin.Context) {
	area := h.svc.GetBySlug(c.Param("slug"))
	if area == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, area)
}
