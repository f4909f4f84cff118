package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

const (
	defaultHistoryLimit     = 20
	defaultLeaderboardLimit = 10
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *sqliteRepository) GetFighters() ([]game.Fighter, error) {
	var fighters []game.Fighter
	if err := r.db.Order("id").Find(&fighters).Error; err != nil {
		return nil, err
	}
	return fighters, nil
}

func (r *sqliteRepository) GetFighterByID(id string) (*game.Fighter, error) {
	var f game.Fighter
	if err := r.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetBattleByBattleID(battleID string) (*game.Battle, error) {
	var b game.Battle
	if err := r.db.Where("battle_id = ?", battleID).First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *sqliteRepository) FindBattleByPaymentTx(txHash string) (*game.Battle, error) {
	if txHash == "" {
		return nil, ErrNotFound
	}
	var b game.Battle
	if err := r.db.Where("payment_tx_hash = ?", txHash).First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *sqliteRepository) ListBattlesByWallet(wallet string, limit int) ([]game.Battle, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	var battles []game.Battle
	if err := r.db.Where("player_wallet = ?", wallet).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&battles).Error; err != nil {
		return nil, err
	}
	return battles, nil
}

func (r *sqliteRepository) GetUserByWallet(wallet string) (*game.User, error) {
	var u game.User
	if err := r.db.Where("wallet_address = ?", wallet).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &game.User{WalletAddress: wallet}, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *sqliteRepository) SaveUser(u *game.User) error {
	return r.db.Save(u).Error
}

func (r *sqliteRepository) UpsertUser(wallet, name string) error {
	return upsertUser(r.db, wallet, name, nil)
}

func (r *sqliteRepository) ApplyBattleResult(b *game.Battle, playerName string, delta game.ProfileDelta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		return upsertUser(tx, b.PlayerWallet, playerName, &delta)
	})
}

// upsertUser loads or creates the profile for wallet, refreshes the display
// name when one is given and applies delta if set.
func upsertUser(db *gorm.DB, wallet, name string, delta *game.ProfileDelta) error {
	var u game.User
	if err := db.Where("wallet_address = ?", wallet).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		u = game.User{WalletAddress: wallet}
	}
	if name != "" {
		u.PlayerName = name
	}
	if delta != nil {
		delta.Apply(&u)
	}
	return db.Save(&u).Error
}

// GetTopPlayers returns top N players ordered by wins, then experience.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.User, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	var users []game.User
	if err := r.db.Model(&game.User{}).
		Where("total_battles > 0").
		Order("wins DESC").
		Order("experience DESC").
		Order("total_battles DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
