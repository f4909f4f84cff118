package engine

import (
	"errors"
	"fmt"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

var (
	// ErrMissingFighter is returned when either fighter is nil.
	ErrMissingFighter = errors.New("both fighters are required")
	// ErrDuplicateFighter is returned when both inputs share an id.
	ErrDuplicateFighter = errors.New("a fighter cannot battle itself")
)

// InvalidStatsError reports a negative base stat on a fighter.
type InvalidStatsError struct {
	FighterID string
	Stat      string
	Value     int
}

func (e *InvalidStatsError) Error() string {
	return fmt.Sprintf("fighter %s has invalid %s: %d", e.FighterID, e.Stat, e.Value)
}

// Outcome is the full result of one simulated battle. Winner and Loser point
// at the fighters passed to Simulate. On a draw Winner is the first input.
type Outcome struct {
	Winner    *game.Fighter       `json:"winner"`
	Loser     *game.Fighter       `json:"loser"`
	Result    game.Result         `json:"result"`
	BattleLog []game.ActionRecord `json:"battle_log"`
}

// Resolver runs battles with a fixed configuration and random source.
type Resolver struct {
	cfg Config
	rnd RandomSource
}

// NewResolver returns a resolver for cfg. A nil rnd uses DefaultRandom.
func NewResolver(cfg Config, rnd RandomSource) *Resolver {
	if rnd == nil {
		rnd = DefaultRandom
	}
	return &Resolver{cfg: cfg, rnd: rnd}
}

// Config returns the resolver's tuning values.
func (r *Resolver) Config() Config { return r.cfg }

func validateFighter(f *game.Fighter) error {
	checks := []struct {
		name  string
		value int
	}{
		{"attack", f.BattleStats.Attack},
		{"defense", f.BattleStats.Defense},
		{"speed", f.BattleStats.Speed},
		{"health", f.BattleStats.Health},
		{"level", f.BattleStats.Level},
		{"experience", f.BattleStats.Experience},
	}
	for _, c := range checks {
		if c.value < 0 {
			return &InvalidStatsError{FighterID: f.ID, Stat: c.name, Value: c.value}
		}
	}
	return nil
}

// Simulate runs a complete battle between a and b and returns the verdict
// with the ordered action log. It never suspends; the whole log exists when
// it returns. An invalid Config fails with ErrInvalidConfig.
func (r *Resolver) Simulate(a, b *game.Fighter) (*Outcome, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, ErrMissingFighter
	}
	if a.ID == b.ID {
		return nil, ErrDuplicateFighter
	}
	if err := validateFighter(a); err != nil {
		return nil, err
	}
	if err := validateFighter(b); err != nil {
		return nil, err
	}

	bc := newBattleContext(a, b, r.cfg, r.rnd)
	bc.runRounds()
	return bc.verdict(), nil
}

// verdict compares final health. Equal health is reported as a draw with
// the first input as nominal winner.
func (bc *battleContext) verdict() *Outcome {
	first, second := bc.sides[0], bc.sides[1]
	out := &Outcome{BattleLog: bc.log}
	switch {
	case first.health > second.health:
		out.Winner, out.Loser, out.Result = first.fighter, second.fighter, game.ResultWin
	case second.health > first.health:
		out.Winner, out.Loser, out.Result = second.fighter, first.fighter, game.ResultWin
	default:
		out.Winner, out.Loser, out.Result = first.fighter, second.fighter, game.ResultDraw
	}
	return out
}

// SimulateBattle runs a one-off battle with the default configuration.
func SimulateBattle(a, b *game.Fighter, rnd RandomSource) (*Outcome, error) {
	return NewResolver(DefaultConfig(), rnd).Simulate(a, b)
}
