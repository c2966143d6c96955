package routes

import (
	"rail_assets/internal/controllers"

	"github.com/gin-gonic/gin"
)

func WorkRoutes(r *gin.Engine) {
	works := r.Group("/works")
	{
		works.GET("/", controllers.ListWorkEntries)
		works.POST("/", controllers.CreateWorkEntry)
		works.GET("/:id", controllers.GetWorkEntry)
		works.DELETE("/:id", controllers.DeleteWorkEntry)
	}
}
