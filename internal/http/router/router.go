package router

import (
	"github.com/gin-gonic/gin"
	"orgbook.app/api-server/internal/http/handler"
	"orgbook.app/api-server/internal/http/middleware"
	"orgbook.app/api-server/internal/service"
	"orgbook.app/api-server/internal/token"
)

func SetupRoutes(router *gin.Engine, services *service.Services, verifier *token.Verifier) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(verifier))
	{
		orgHandler := handler.NewOrganizationHandler(services.Organizations())
		OrganizationRouter(v1.Group("/organizations"), orgHandler)
	}
}
