package app

import (
	"github.com/gin-gonic/gin"
	"github.com/lexofis/core/internal/modules/content/article"
	"github.com/lexofis/core/internal/modules/content/practicearea"
	"github.com/lexofis/core/internal/modules/intake/appointment"
	"github.com/lexofis/core/internal/modules/intake/contact"
	"github.com/lexofis/core/internal/modules/stats/dashboard"
	"github.com/lexofis/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	log := a.logger

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "lexofis-core",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api/v1")
	admin := api.Group("/admin")

	contactVariant := contact.ResolveVariant(db, a.cfg.ContactsTable, log)
	contactSvc := contact.NewService(db, log, contactVariant)

	article.NewHandler(article.NewService(db, log)).RegisterRoutes(api, admin)
	practicearea.NewHandler(practicearea.NewService(db, log)).RegisterRoutes(api)
	appointment.NewHandler(appointment.NewService(db, log)).RegisterRoutes(api, admin)
	contact.NewHandler(contactSvc).RegisterRoutes(api, admin)
	dashboard.NewHandler(dashboard.NewService(db, log, contactSvc)).RegisterRoutes(admin)
}
