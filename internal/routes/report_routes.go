package routes

import (
	"rail_assets/internal/controllers"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(r *gin.Engine) {
	reports := r.Group("/reports")
	{
		reports.GET("/station-unit-count", controllers.StationUnitCount)
		reports.GET("/station-total-earnings", controllers.StationTotalEarnings)
		reports.GET("/station-payment-status", controllers.StationPaymentStatus)
		reports.GET("/earnings-by-payment-head", controllers.EarningsByPaymentHead)
		reports.GET("/earnings-by-zone", controllers.EarningsByZone)
		reports.GET("/earnings-by-division", controllers.EarningsByDivision)
		reports.GET("/revenue-trend", controllers.RevenueTrend)
		reports.GET("/top-units", controllers.TopUnits)
		reports.GET("/bottom-units", controllers.BottomUnits)
		reports.GET("/dead-units", controllers.DeadUnits)
		reports.GET("/chronic-defaulters", controllers.ChronicDefaulters)
		reports.GET("/payment-status-summary", controllers.PaymentStatusSummary)
		reports.GET("/units-by-zone", controllers.UnitsByZone)
		reports.GET("/top-footfall", controllers.TopStationsByFootfall)
		reports.GET("/parking-availability", controllers.ParkingAvailability)
	}
}
