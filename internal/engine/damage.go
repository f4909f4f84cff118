package engine

import (
	"math"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

// Hit is the result of one damage roll.
type Hit struct {
	Damage   int
	Critical bool
}

// baseDamage is the non-random part of an attack, never below 1.
func baseDamage(attacker, defender game.BattleStats, cfg Config) int {
	base := cfg.BaseAttackDamage
	attackBonus := float64(attacker.Attack) / 100 * base
	defenseReduction := float64(defender.Defense) / 100 * cfg.BaseDefenseReduction * base
	levelBonus := float64(attacker.Level) * cfg.LevelMultiplier * base

	dmg := int(math.Floor(base + attackBonus + levelBonus - defenseReduction))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// CritChance is the probability of a critical hit. Only a speed advantage
// grants a chance; slower attackers never crit.
func CritChance(attacker, defender game.BattleStats, cfg Config) float64 {
	return math.Max(0, float64(attacker.Speed-defender.Speed)/cfg.CritSpeedDivisor)
}

// CalculateDamage computes the damage attacker deals to defender using
// battle-ready stats. rnd is consulted exactly once for the critical roll.
func CalculateDamage(attacker, defender game.BattleStats, cfg Config, rnd RandomSource) Hit {
	dmg := baseDamage(attacker, defender, cfg)
	if rnd() < CritChance(attacker, defender, cfg) {
		crit := int(math.Floor(float64(dmg) * cfg.CritMultiplier))
		if crit < dmg {
			crit = dmg
		}
		return Hit{Damage: crit, Critical: true}
	}
	return Hit{Damage: dmg}
}
