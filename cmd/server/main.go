package main

import (
	"log"

	_ "github.com/bananahell/kanban-challenge/docs"
	"github.com/bananahell/kanban-challenge/internal/config"
	"github.com/bananahell/kanban-challenge/internal/server"
)

// @title           Kanban Challenge API
// @version         1.0
// @description     API for managing kanban boards, cards and their nested resources.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
