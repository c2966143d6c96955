package routes

import (
	"rail_assets/internal/controllers"

	"github.com/gin-gonic/gin"
)

func StationRoutes(r *gin.Engine) {
	stations := r.Group("/stations")
	{
		stations.GET("/", controllers.ListStations)
		stations.POST("/", controllers.CreateStation)
		stations.POST("/sync", controllers.SyncStations)
		stations.GET("/:station_code", controllers.GetStation)
		stations.PUT("/:station_code", controllers.UpdateStation)
		stations.DELETE("/:station_code", controllers.DeleteStation)
	}
}
