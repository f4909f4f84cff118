package game

import (
	"strings"

	"gorm.io/gorm"
)

// Rarity is the lower-cased value of a fighter's "Rarity" trait. It selects
// the multiplier applied to attack, defense and speed before a battle.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// TraitRarity is the attribute trait_type that carries a fighter's rarity.
const TraitRarity = "Rarity"

// BattleStats are the raw combat attributes of a fighter. All values are
// expected to be non-negative.
type BattleStats struct {
	Attack     int `json:"attack" yaml:"attack"`
	Defense    int `json:"defense" yaml:"defense"`
	Speed      int `json:"speed" yaml:"speed"`
	Health     int `json:"health" yaml:"health"`
	Level      int `json:"level" yaml:"level"`
	Experience int `json:"experience" yaml:"experience"`
}

// Attribute is a single NFT metadata trait. Value is usually a string but
// metadata may carry numbers as well.
type Attribute struct {
	TraitType string `json:"trait_type" yaml:"trait_type"`
	Value     any    `json:"value" yaml:"value"`
}

// Fighter is an NFT registered in the arena roster. The roster is loaded
// from configuration and mirrored into the database so battles can
// reference fighters by ID.
type Fighter struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	TokenID         string      `json:"token_id"`
	ContractAddress string      `json:"contract_address"`
	Name            string      `json:"name"`
	Image           string      `json:"image"`
	Owner           string      `json:"owner" gorm:"index"`
	Attributes      []Attribute `json:"attributes" gorm:"serializer:json"`
	BattleStats     BattleStats `json:"battle_stats" gorm:"embedded;embeddedPrefix:stat_"`
}

// TableName keeps the roster in `arena_fighters`.
func (Fighter) TableName() string { return "arena_fighters" }

// Rarity returns the fighter's rarity trait, lower-cased. Fighters without
// a string Rarity trait return an empty Rarity.
func (f *Fighter) Rarity() Rarity {
	if f == nil {
		return ""
	}
	for _, a := range f.Attributes {
		if a.TraitType != TraitRarity {
			continue
		}
		s, ok := a.Value.(string)
		if !ok {
			return ""
		}
		return Rarity(strings.ToLower(strings.TrimSpace(s)))
	}
	return ""
}

// ActionKind identifies what a combatant did in one ActionRecord. Only
// plain attacks are produced by the resolver.
type ActionKind string

const ActionAttack ActionKind = "attack"

// ActionRecord describes one executed attack. Turn is the round counter and
// is shared by both attacks of a round.
type ActionRecord struct {
	Turn            int        `json:"turn"`
	Attacker        string     `json:"attacker"`
	Defender        string     `json:"defender"`
	Action          ActionKind `json:"action"`
	Damage          int        `json:"damage"`
	RemainingHealth int        `json:"remaining_health"`
	Critical        bool       `json:"critical,omitempty"`
}

// Result is a battle verdict. The resolver only produces ResultWin and
// ResultDraw; ResultLoss appears when a battle is viewed from the losing
// side.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

type BattleStatus string

const (
	BattleStatusPending   BattleStatus = "pending"
	BattleStatusActive    BattleStatus = "active"
	BattleStatusCompleted BattleStatus = "completed"
)

// Battle is the persisted record of one simulated battle. Player1 is always
// the challenger's fighter and the first engine input.
type Battle struct {
	gorm.Model
	BattleID         string         `json:"battle_id" gorm:"uniqueIndex;size:36"`
	Player1FighterID string         `json:"player1_fighter_id" gorm:"index"`
	Player2FighterID string         `json:"player2_fighter_id" gorm:"index"`
	WinnerFighterID  *string        `json:"winner_fighter_id"`
	LoserFighterID   *string        `json:"loser_fighter_id"`
	PlayerWallet     string         `json:"player_wallet" gorm:"index"`
	PaymentTxHash    string         `json:"payment_tx_hash,omitempty" gorm:"index"`
	Result           Result         `json:"result"`
	Status           BattleStatus   `json:"status"`
	BattleLog        []ActionRecord `json:"battle_log" gorm:"serializer:json"`
	Timestamp        int64          `json:"timestamp"`
}

func (Battle) TableName() string { return "arena_battles" }

// ResultFor returns the verdict from the point of view of fighterID. A draw
// stays a draw for both sides.
func (b *Battle) ResultFor(fighterID string) Result {
	if b.Result == ResultDraw || b.WinnerFighterID == nil {
		return ResultDraw
	}
	if *b.WinnerFighterID == fighterID {
		return ResultWin
	}
	return ResultLoss
}

// PlayerResult is the verdict for the challenger's fighter.
func (b *Battle) PlayerResult() Result {
	return b.ResultFor(b.Player1FighterID)
}

// User stores a player's identity (wallet address) and aggregate stats.
type User struct {
	gorm.Model
	WalletAddress string `json:"wallet_address" gorm:"uniqueIndex"`
	PlayerName    string `json:"player_name"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	TotalBattles  int    `json:"total_battles"`
	Experience    int    `json:"experience"`
}

func (User) TableName() string { return "player_profiles" }

// ProfileDelta is the change a single battle makes to a player's profile.
type ProfileDelta struct {
	Wins       int
	Losses     int
	Draws      int
	Experience int
}

// Apply adds d to u and counts one more battle.
func (d ProfileDelta) Apply(u *User) {
	u.Wins += d.Wins
	u.Losses += d.Losses
	u.Draws += d.Draws
	u.Experience += d.Experience
	u.TotalBattles++
}
