package main

import (
	"os"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/config"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/storage"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create an arena_config.json (or .yaml) with a 'fighter_list' array of fighters (id,name,attributes,battle_stats) and optional keys: server.address, battle, rarity_multipliers, experience, entry_fee, replay, messages",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, roster []game.Fighter) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, roster)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
