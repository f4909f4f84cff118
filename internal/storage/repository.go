package storage

import (
	"errors"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	GetFighters() ([]game.Fighter, error)
	GetFighterByID(id string) (*game.Fighter, error)

	CreateBattle(b *game.Battle) error
	GetBattleByBattleID(battleID string) (*game.Battle, error)
	// FindBattleByPaymentTx returns the battle paid for by txHash, if any.
	FindBattleByPaymentTx(txHash string) (*game.Battle, error)
	// ListBattlesByWallet returns the newest battles started by wallet.
	ListBattlesByWallet(wallet string, limit int) ([]game.Battle, error)

	// GetUserByWallet returns the profile for wallet, or an empty profile
	// when the player has never battled.
	GetUserByWallet(wallet string) (*game.User, error)
	UpsertUser(wallet, name string) error
	SaveUser(u *game.User) error
	// ApplyBattleResult stores b and applies delta to the challenger's
	// profile in one transaction.
	ApplyBattleResult(b *game.Battle, playerName string, delta game.ProfileDelta) error
	// Leaderboard
	GetTopPlayers(limit int) ([]game.User, error)
}
