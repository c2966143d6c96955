package routes

import (
	"rail_assets/internal/controllers"

	"github.com/gin-gonic/gin"
)

func UnitRoutes(r *gin.Engine) {
	units := r.Group("/units")
	{
		units.GET("/", controllers.ListUnits)
		units.POST("/", controllers.CreateUnit)
		units.POST("/sync", controllers.SyncUnits)
		units.GET("/:unit_no", controllers.GetUnit)
		units.PUT("/:unit_no", controllers.UpdateUnit)
		units.DELETE("/:unit_no", controllers.DeleteUnit)
	}
}
