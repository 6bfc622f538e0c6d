package main

import (
	"roost/config"
	"roost/di"
	_ "roost/docs"
	"roost/shared/logger"
)

// @title Roost API
// @version 1.0
// @description Vacation rental marketplace API: property listings, availability, pricing, and bookings.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
