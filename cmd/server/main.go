package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/agenthands/sentinel/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	srv := server.NewServer()
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", srv.Port)
	if err := r.Run(":" + srv.Port); err != nil {
		log.Fatal(err)
	}
}
