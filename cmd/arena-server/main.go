package main

import (
	"net/http"
	"os"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/api"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/engine"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/service"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/version"
)

func main() {
	defer logging.Sync()
	if err := logging.SetLevel(os.Getenv(constants.EnvLogLevel)); err != nil {
		logging.Warn("ignoring invalid log level", logging.Fields{"value": os.Getenv(constants.EnvLogLevel)})
	}
	if os.Getenv(constants.EnvSessionSecret) == "" {
		logging.Warn("SESSION_SECRET not set; using an ephemeral secret", nil)
	}

	// Config path may be provided via ARENA_CONFIG or defaults to
	// ./arena_config.json in the current working directory.
	configPath := envOr(constants.EnvConfigPath, constants.DefaultConfigPath)
	cfg := loadConfigOrExit(configPath)

	dbPath := envOr(constants.EnvDatabasePath, constants.DefaultDatabasePath)
	repo := createRepositoryOrExit(dbPath, cfg.Fighters)

	resolver := engine.NewResolver(cfg.Battle, engine.DefaultRandom)
	arena := service.NewArena(repo, resolver, service.Rules{
		RequireEntryFee:   cfg.EntryFee.Required,
		ExperiencePerWin:  cfg.ExperiencePerWin,
		ExperiencePerLoss: cfg.ExperiencePerLoss,
	})
	handler := api.NewArenaHandler(repo, arena, cfg.Battle, api.ReplaySettings{
		StepDelay: cfg.ReplayStepDelay,
		Messages:  cfg.Messages,
	})

	logging.Info("arena configured", logging.Fields{
		"version":          version.Version,
		"fighters":         len(cfg.Fighters),
		"entry_fee":        cfg.EntryFee.Required,
		"entry_fee_amount": cfg.EntryFee.Amount + " " + cfg.EntryFee.Currency,
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: api.NewRouter(handler),
	}
	if err := serve(srv); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
