package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/dedupe"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/engine"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/storage"
)

var (
	ErrInvalidRequest   = errors.New("wallet address and fighter id are required")
	ErrEntryFeeRequired = errors.New("entry fee payment required")
	ErrFighterNotFound  = errors.New("fighter not found")
	ErrOpponentNotFound = errors.New("opponent not found")
	ErrSameFighter      = errors.New("a fighter cannot battle itself")
	// ErrPaymentAlreadyUsed means the transaction paid for a different
	// player's or fighter's battle.
	ErrPaymentAlreadyUsed = errors.New("payment transaction already used for another battle")
)

// ArenaRepo is the minimal repository interface required by Arena.
type ArenaRepo interface {
	GetFighters() ([]game.Fighter, error)
	GetFighterByID(id string) (*game.Fighter, error)
	FindBattleByPaymentTx(txHash string) (*game.Battle, error)
	ApplyBattleResult(b *game.Battle, playerName string, delta game.ProfileDelta) error
}

// Rules are the arena policies applied around each simulated battle.
type Rules struct {
	RequireEntryFee   bool
	ExperiencePerWin  int
	ExperiencePerLoss int
	// Pick selects the random opponent index; defaults to rand.Intn.
	Pick func(n int) int
}

// DefaultRules requires the entry fee and awards 50/10 experience.
func DefaultRules() Rules {
	return Rules{RequireEntryFee: true, ExperiencePerWin: 50, ExperiencePerLoss: 10}
}

// deltaFor returns the profile change for the challenger. A draw earns the
// consolation experience.
func (r Rules) deltaFor(res game.Result) game.ProfileDelta {
	switch res {
	case game.ResultWin:
		return game.ProfileDelta{Wins: 1, Experience: r.ExperiencePerWin}
	case game.ResultLoss:
		return game.ProfileDelta{Losses: 1, Experience: r.ExperiencePerLoss}
	default:
		return game.ProfileDelta{Draws: 1, Experience: r.ExperiencePerLoss}
	}
}

type StartBattleRequest struct {
	PlayerWallet string
	PlayerName   string
	FighterID    string
	// OpponentID is optional; an empty value picks a random opponent.
	OpponentID    string
	EntryFeePaid  bool
	PaymentTxHash string
}

// Arena runs battles for players and records their results.
type Arena struct {
	repo     ArenaRepo
	resolver *engine.Resolver
	rules    Rules
	now      func() time.Time
}

func NewArena(repo ArenaRepo, resolver *engine.Resolver, rules Rules) *Arena {
	if rules.Pick == nil {
		rules.Pick = rand.Intn
	}
	return &Arena{repo: repo, resolver: resolver, rules: rules, now: time.Now}
}

// Rules returns the policies the arena was built with.
func (a *Arena) Rules() Rules { return a.rules }

// StartBattle validates the request, simulates the battle and persists it
// together with the player's profile update. A payment transaction hash
// that already paid for a battle returns that battle unchanged when the
// request matches it, and ErrPaymentAlreadyUsed otherwise.
func (a *Arena) StartBattle(ctx context.Context, req StartBattleRequest) (*game.Battle, error) {
	req.PlayerWallet = strings.TrimSpace(req.PlayerWallet)
	req.FighterID = strings.TrimSpace(req.FighterID)
	req.OpponentID = strings.TrimSpace(req.OpponentID)
	req.PaymentTxHash = strings.TrimSpace(req.PaymentTxHash)

	if req.PlayerWallet == "" || req.FighterID == "" {
		return nil, ErrInvalidRequest
	}
	if a.rules.RequireEntryFee && !req.EntryFeePaid {
		return nil, ErrEntryFeeRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.PaymentTxHash == "" {
		return a.runBattle(req)
	}
	v, err, _ := dedupe.BattleGroup.Do(dedupe.BattleKey(req.PaymentTxHash), func() (interface{}, error) {
		existing, err := a.repo.FindBattleByPaymentTx(req.PaymentTxHash)
		if err == nil {
			logging.Info("payment already used; returning existing battle", logging.Fields{
				constants.LogFieldBattleID: existing.BattleID,
				constants.LogFieldTxHash:   req.PaymentTxHash,
			})
			return existing, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return a.runBattle(req)
	})
	if err != nil {
		return nil, err
	}
	// Concurrent callers share one result, so ownership is checked here.
	b := v.(*game.Battle)
	if !paidBy(b, req) {
		logging.Warn("payment reused by a different request", logging.Fields{
			constants.LogFieldBattleID: b.BattleID,
			constants.LogFieldTxHash:   req.PaymentTxHash,
			constants.LogFieldWallet:   req.PlayerWallet,
		})
		return nil, ErrPaymentAlreadyUsed
	}
	return b, nil
}

// paidBy reports whether b is the battle req would have produced: same
// wallet, same fighter and, when one was named, same opponent.
func paidBy(b *game.Battle, req StartBattleRequest) bool {
	if !strings.EqualFold(b.PlayerWallet, req.PlayerWallet) || b.Player1FighterID != req.FighterID {
		return false
	}
	return req.OpponentID == "" || b.Player2FighterID == req.OpponentID
}

func (a *Arena) loadFighters(req StartBattleRequest) (*game.Fighter, *game.Fighter, error) {
	fighter, err := a.repo.GetFighterByID(req.FighterID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrFighterNotFound
		}
		return nil, nil, err
	}

	if req.OpponentID != "" {
		if req.OpponentID == fighter.ID {
			return nil, nil, ErrSameFighter
		}
		opponent, err := a.repo.GetFighterByID(req.OpponentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, nil, ErrOpponentNotFound
			}
			return nil, nil, err
		}
		return fighter, opponent, nil
	}

	roster, err := a.repo.GetFighters()
	if err != nil {
		return nil, nil, err
	}
	opponent, err := PickOpponent(roster, fighter.ID, a.rules.Pick)
	if err != nil {
		return nil, nil, err
	}
	return fighter, opponent, nil
}

func (a *Arena) runBattle(req StartBattleRequest) (*game.Battle, error) {
	fighter, opponent, err := a.loadFighters(req)
	if err != nil {
		return nil, err
	}

	out, err := a.resolver.Simulate(fighter, opponent)
	if err != nil {
		return nil, err
	}

	b := &game.Battle{
		BattleID:         uuid.NewString(),
		Player1FighterID: fighter.ID,
		Player2FighterID: opponent.ID,
		PlayerWallet:     req.PlayerWallet,
		PaymentTxHash:    req.PaymentTxHash,
		Result:           out.Result,
		Status:           game.BattleStatusCompleted,
		BattleLog:        out.BattleLog,
		Timestamp:        a.now().UnixMilli(),
	}
	if out.Result == game.ResultWin {
		winner, loser := out.Winner.ID, out.Loser.ID
		b.WinnerFighterID = &winner
		b.LoserFighterID = &loser
	}

	if err := a.repo.ApplyBattleResult(b, req.PlayerName, a.rules.deltaFor(b.PlayerResult())); err != nil {
		logging.Error("failed to store battle", err, logging.Fields{constants.LogFieldBattleID: b.BattleID})
		return nil, err
	}
	logging.Info("battle completed", logging.Fields{
		constants.LogFieldBattleID:  b.BattleID,
		constants.LogFieldFighterID: fighter.ID,
		constants.LogFieldOpponent:  opponent.ID,
		constants.LogFieldWallet:    req.PlayerWallet,
		constants.LogFieldResult:    string(b.PlayerResult()),
		constants.LogFieldTurns:     len(b.BattleLog),
	})
	return b, nil
}
