package dashboard

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

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/dashboard", h.overview)
}

func (h *Handler) overview(c *gin.Context) {
	response.OK(c, h.svc.Overview())
}
