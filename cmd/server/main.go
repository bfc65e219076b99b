package main

import (
	"log"

	_ "gridboard/docs"
	"gridboard/internal/config"
	"gridboard/internal/server"
)

// @title           Grid Board API
// @version         1.0
// @description     Stores and retrieves fixed-size binary grid snapshots owned by named users.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
