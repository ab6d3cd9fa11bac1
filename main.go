package main

import (
	"log"

	"kantin-backend/configs"
	"kantin-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB + migrasi
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	// Data awal
	if err := configs.SeedRoles(); err != nil {
		log.Fatalf("seed roles failed: %v", err)
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedKatalog(); err != nil {
		log.Fatalf("seed katalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	log.Println("kantin backend listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
