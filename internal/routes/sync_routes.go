package routes

import (
	"rail_assets/internal/controllers"

	"github.com/gin-gonic/gin"
)

func SyncRoutes(r *gin.Engine) {
	sync := r.Group("/sync")
	{
		sync.POST("/all", controllers.SyncAll)
	}
}

func HealthRoutes(r *gin.Engine) {
	health := r.Group("/health")
	{
		health.GET("/sheet", controllers.HealthSheet)
	}
}
