package main

import (
	"log"
	"net/http"

	"rail_assets/internal/config"
	"rail_assets/internal/logger"
	"rail_assets/internal/middleware"
	"rail_assets/internal/routes"
	"rail_assets/internal/scheduler"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Daily sheet sync
	scheduler.Start()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.GetEnv("LISTEN_ADDR", "0.0.0.0:8080")
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
