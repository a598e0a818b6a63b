package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"notekeeper/internal/config"
	"notekeeper/internal/database"
)

func loadEnv() error {
	possiblePaths := []string{
		".env",
		"./.env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if err := godotenv.Load(path); err == nil {
			log.Printf("Loaded .env from: %s", path)
			return nil
		}
	}

	return fmt.Errorf("could not load .env file from any path")
}

func main() {
	if err := loadEnv(); err != nil {
		log.Printf("Warning: %v", err)
		log.Println("Continuing with system environment variables...")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.InitSchema(); err != nil {
		log.Fatal("Schema initialization error: ", err)
	}
}
