package main

import (
	"fmt"
	"log"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/configs"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/middlewares"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedFixtures(db); err != nil {
		log.Fatalf("seed fixtures failed: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
