package article

import (
	"net/http"

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
	rg.GET("/articles", h.list)
	rg.GET("/articles/:slug", h.getBySlug)

	admin.GET("/articles", h.listAdmin)
	admin.POST("/articles", h.create)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

func (h *Handler) listAdmin(c *gin.Context) {
	response.OK(c, h.svc.ListAdmin())
}

func (h *Handler) getBySlug(c *gin.Context) {
	a := h.svc.GetBySlug(c.Param("slug"))
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if details := Validate(&dto); details != nil {
		response.ValidationFailed(c, details)
		return
	}

	a, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "article": a})
}
