package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/trikaloudis/aquomixlab-heatmaps/internal/config"
	"github.com/trikaloudis/aquomixlab-heatmaps/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	server, err := ui.NewServer(cfg)
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	log.Printf("Starting heatmap visualizer on http://localhost:%s", cfg.Server.Port)
	log.Fatal(server.Start())
}
