package engine

import (
	"math"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

// --- Stat scaling ------------------------------------------------------

func scaleStat(v int, multiplier float64) int {
	return int(math.Floor(float64(v) * multiplier))
}

// BattleReady derives the stats a fighter enters a battle with: attack,
// defense and speed are multiplied by the rarity factor and floored, health
// is reset to cfg.MaxHealth, level and experience pass through.
func BattleReady(base game.BattleStats, rarity game.Rarity, cfg Config) game.BattleStats {
	m := cfg.rarityMultiplier(rarity)
	return game.BattleStats{
		Attack:     scaleStat(base.Attack, m),
		Defense:    scaleStat(base.Defense, m),
		Speed:      scaleStat(base.Speed, m),
		Health:     cfg.MaxHealth,
		Level:      base.Level,
		Experience: base.Experience,
	}
}

// FighterBattleReady is BattleReady applied to a roster fighter and its
// Rarity trait.
func FighterBattleReady(f *game.Fighter, cfg Config) game.BattleStats {
	return BattleReady(f.BattleStats, f.Rarity(), cfg)
}
