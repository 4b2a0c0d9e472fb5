package main

import (
	"log"
	"os"

	"github.com/rogerio-castellano/storefront-simulator/internal/auth"
	"github.com/rogerio-castellano/storefront-simulator/internal/config"
	"github.com/rogerio-castellano/storefront-simulator/internal/fixtures"
	"github.com/rogerio-castellano/storefront-simulator/internal/repo"
	"github.com/rogerio-castellano/storefront-simulator/internal/session"
)

func main() {
	cfg := config.Load()

	data, err := fixtures.Load()
	if err != nil {
		log.Fatal("❌ Could not load fixtures:", err)
	}

	catalog := repo.NewInMemoryCatalogRepository(data.Products, data.Categories)
	users := repo.NewInMemoryUserRepository(data.Users)
	authService := auth.NewService(users, []byte(cfg.TokenSecret), cfg.TokenTTL)
	go authService.StartThrottleCleanupLoop()

	controller := session.NewController(catalog, authService, cfg, os.Stdin, os.Stdout)
	if err := controller.Run(); err != nil {
		log.Fatal(err)
	}
}
