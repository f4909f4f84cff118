package engine

import "github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"

// execAttack resolves one attack from slot atk against slot def and records
// it in the battle log.
func (bc *battleContext) execAttack(atk, def int) {
	attacker := &bc.sides[atk]
	defender := &bc.sides[def]

	hit := CalculateDamage(attacker.stats, defender.stats, bc.cfg, bc.rnd)
	defender.health -= hit.Damage
	if defender.health < 0 {
		defender.health = 0
	}
	bc.add(game.ActionRecord{
		Turn:            bc.turn,
		Attacker:        attacker.fighter.ID,
		Defender:        defender.fighter.ID,
		Action:          game.ActionAttack,
		Damage:          hit.Damage,
		RemainingHealth: defender.health,
		Critical:        hit.Critical,
	})
}

// runRounds plays rounds until a fighter drops or the round cap is hit.
func (bc *battleContext) runRounds() {
	order := bc.turnOrder()
	for bc.bothStanding() && bc.turn <= bc.cfg.MaxRounds {
		if bc.bothStanding() {
			bc.execAttack(order[0], order[1])
		}
		if bc.bothStanding() {
			bc.execAttack(order[1], order[0])
		}
		bc.turn++
	}
}
