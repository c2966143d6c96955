package routes

import (
	"rail_assets/internal/controllers"

	"github.com/gin-gonic/gin"
)

func EarningRoutes(r *gin.Engine) {
	earnings := r.Group("/earnings")
	{
		earnings.GET("/", controllers.ListEarnings)
		earnings.POST("/", controllers.CreateEarning)
		earnings.POST("/sync", controllers.SyncEarnings)
		earnings.GET("/:id", controllers.GetEarning)
		earnings.PUT("/:id", controllers.UpdateEarning)
		earnings.DELETE("/:id", controllers.DeleteEarning)
	}
}
