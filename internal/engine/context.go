package engine

import "github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"

// --- Battle context and helpers ---------------------------------------

// combatant is one side of a battle. Slot 0 is always the first input
// fighter so the verdict can fall back to input order.
type combatant struct {
	fighter *game.Fighter
	stats   game.BattleStats
	health  int
}

type battleContext struct {
	cfg   Config
	rnd   RandomSource
	sides [2]combatant
	turn  int
	log   []game.ActionRecord
}

func newBattleContext(a, b *game.Fighter, cfg Config, rnd RandomSource) *battleContext {
	bc := &battleContext{
		cfg:  cfg,
		rnd:  rnd,
		turn: 1,
		log:  make([]game.ActionRecord, 0, 2*cfg.MaxRounds),
	}
	for i, f := range []*game.Fighter{a, b} {
		stats := FighterBattleReady(f, cfg)
		bc.sides[i] = combatant{fighter: f, stats: stats, health: stats.Health}
	}
	return bc
}

func (bc *battleContext) add(rec game.ActionRecord) { bc.log = append(bc.log, rec) }

func (bc *battleContext) bothStanding() bool {
	return bc.sides[0].health > 0 && bc.sides[1].health > 0
}
