package main

import (
	"net/http"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/handlers"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/middleware"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/repo"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	foodRepo := repo.NewFoodRepository(gormDB)
	pantryRepo := repo.NewPantryRepository(gormDB)
	groupRepo := repo.NewFoodGroupRepository(gormDB)

	pantryService := service.NewPantryService(pantryRepo, foodRepo)
	groupService := service.NewFoodGroupService(groupRepo)

	h := handlers.NewHandler(pantryService, groupService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
