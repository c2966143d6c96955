package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging apply to every route group below.
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	StationRoutes(r)
	UnitRoutes(r)
	EarningRoutes(r)
	WorkRoutes(r)
	SyncRoutes(r)
	ReportRoutes(r)
	HealthRoutes(r)

	return r
}
