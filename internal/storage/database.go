package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
)

// OpenAndMigrate opens the SQLite database, migrates the schema and syncs
// the configured roster into it.
func OpenAndMigrate(dataSourceName string, roster []game.Fighter) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dataSourceName, err)
	}

	if err := db.AutoMigrate(&game.Fighter{}, &game.Battle{}, &game.User{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := syncRoster(db, roster); err != nil {
		return nil, err
	}
	return db, nil
}

// syncRoster upserts every configured fighter. The config file is the
// source of truth for stats, so existing rows are overwritten.
func syncRoster(db *gorm.DB, roster []game.Fighter) error {
	if len(roster) == 0 {
		return nil
	}
	fighters := make([]game.Fighter, len(roster))
	copy(fighters, roster)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&fighters).Error
	if err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}
	logging.Info("roster synced", logging.Fields{constants.LogFieldCount: len(fighters)})
	return nil
}
