package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

// RandomSource returns a float in [0,1). It drives critical-hit rolls and
// flavor text selection. Inject a fixed source for reproducible battles.
type RandomSource func() float64

// DefaultRandom uses the global math/rand source, which is safe for
// concurrent use.
var DefaultRandom RandomSource = rand.Float64

// Config holds every tuning value used by the resolver.
type Config struct {
	MaxHealth            int
	BaseAttackDamage     float64
	BaseDefenseReduction float64
	LevelMultiplier      float64
	CritSpeedDivisor     float64
	CritMultiplier       float64
	MaxRounds            int
	RarityMultipliers    map[game.Rarity]float64
}

// DefaultRarityMultipliers returns a fresh copy of the standard rarity table.
func DefaultRarityMultipliers() map[game.Rarity]float64 {
	return map[game.Rarity]float64{
		game.RarityCommon:    1.0,
		game.RarityUncommon:  1.1,
		game.RarityRare:      1.25,
		game.RarityEpic:      1.5,
		game.RarityLegendary: 2.0,
	}
}

// DefaultConfig returns the standard arena tuning.
func DefaultConfig() Config {
	return Config{
		MaxHealth:            100,
		BaseAttackDamage:     20,
		BaseDefenseReduction: 0.1,
		LevelMultiplier:      0.1,
		CritSpeedDivisor:     200,
		CritMultiplier:       1.5,
		MaxRounds:            20,
		RarityMultipliers:    DefaultRarityMultipliers(),
	}
}

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid battle config")

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Validate reports the first tuning value that would make a battle
// meaningless or non-terminating.
func (c Config) Validate() error {
	switch {
	case c.MaxHealth <= 0:
		return fmt.Errorf("%w: max_health must be positive", ErrInvalidConfig)
	case c.MaxRounds <= 0:
		return fmt.Errorf("%w: max_rounds must be positive", ErrInvalidConfig)
	case !finiteNonNegative(c.CritSpeedDivisor) || c.CritSpeedDivisor == 0:
		return fmt.Errorf("%w: crit_speed_divisor must be positive", ErrInvalidConfig)
	case !finiteNonNegative(c.BaseAttackDamage):
		return fmt.Errorf("%w: base_attack_damage must be a non-negative number", ErrInvalidConfig)
	case !finiteNonNegative(c.BaseDefenseReduction):
		return fmt.Errorf("%w: base_defense_reduction must be a non-negative number", ErrInvalidConfig)
	case !finiteNonNegative(c.LevelMultiplier):
		return fmt.Errorf("%w: level_multiplier must be a non-negative number", ErrInvalidConfig)
	case !finiteNonNegative(c.CritMultiplier):
		return fmt.Errorf("%w: crit_multiplier must be a non-negative number", ErrInvalidConfig)
	}
	for r, m := range c.RarityMultipliers {
		if !finiteNonNegative(m) {
			return fmt.Errorf("%w: rarity multiplier for %q must be a non-negative number", ErrInvalidConfig, r)
		}
	}
	return nil
}

// rarityMultiplier returns the configured factor for r, or 1.0 when the
// rarity is unknown or missing.
func (c Config) rarityMultiplier(r game.Rarity) float64 {
	if m, ok := c.RarityMultipliers[r]; ok {
		return m
	}
	return 1.0
}
