package main

import (
	"context"
	"fmt"
	"os"

	"desguace-service/internal/auth"
	"desguace-service/internal/config"
	"desguace-service/internal/db"
	httphandler "desguace-service/internal/http"
	"desguace-service/internal/http/middleware"
	"desguace-service/internal/logger"
	"desguace-service/internal/repository"
	"desguace-service/internal/seed"
	"desguace-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	store, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to open database")
	}

	vehicleRepo := repository.NewVehicleRepository(store)
	partRepo := repository.NewPartRepository(store)
	inventoryRepo := repository.NewInventoryRepository(store)

	vehicleService := service.NewVehicleService(vehicleRepo)
	partService := service.NewPartService(partRepo)
	inventoryService := service.NewInventoryService(store, inventoryRepo, partRepo, vehicleRepo)

	seeder := seed.New(store, vehicleRepo, partRepo, inventoryRepo, appLogger)
	if cfg.SeedOnStart {
		seeder.SeedIfEmpty(context.Background())
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(vehicleService, partService, inventoryService, seeder, store, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting desguace service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
