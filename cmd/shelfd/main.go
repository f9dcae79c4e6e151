package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shelfd-dev/shelfd/db"
	"github.com/shelfd-dev/shelfd/internal/config"
	"github.com/shelfd-dev/shelfd/internal/handlers"
	"github.com/shelfd-dev/shelfd/internal/router"
	"github.com/shelfd-dev/shelfd/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	s := store.New(conn)

	r := router.NewRouter(handlers.NewUserHandler(s), handlers.NewItemHandler(s), cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
