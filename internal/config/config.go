package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/engine"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

// FighterEntry is one roster fighter as written in the config file.
type FighterEntry struct {
	ID              string           `json:"id" yaml:"id" jsonschema:"required"`
	TokenID         string           `json:"token_id,omitempty" yaml:"token_id"`
	ContractAddress string           `json:"contract_address,omitempty" yaml:"contract_address"`
	Name            string           `json:"name" yaml:"name" jsonschema:"required"`
	Image           string           `json:"image,omitempty" yaml:"image"`
	Owner           string           `json:"owner,omitempty" yaml:"owner"`
	Attributes      []game.Attribute `json:"attributes,omitempty" yaml:"attributes"`
	BattleStats     game.BattleStats `json:"battle_stats" yaml:"battle_stats" jsonschema:"required"`
}

type ServerSection struct {
	Address string `json:"address,omitempty" yaml:"address"`
}

// BattleSection overrides engine tuning. Omitted values keep the defaults.
type BattleSection struct {
	MaxHealth            *int     `json:"max_health,omitempty" yaml:"max_health"`
	BaseAttackDamage     *float64 `json:"base_attack_damage,omitempty" yaml:"base_attack_damage"`
	BaseDefenseReduction *float64 `json:"base_defense_reduction,omitempty" yaml:"base_defense_reduction"`
	LevelMultiplier      *float64 `json:"level_multiplier,omitempty" yaml:"level_multiplier"`
	CritSpeedDivisor     *float64 `json:"crit_speed_divisor,omitempty" yaml:"crit_speed_divisor"`
	CritMultiplier       *float64 `json:"crit_multiplier,omitempty" yaml:"crit_multiplier"`
	MaxRounds            *int     `json:"max_rounds,omitempty" yaml:"max_rounds"`
}

type ExperienceSection struct {
	PerWin  *int `json:"per_win,omitempty" yaml:"per_win"`
	PerLoss *int `json:"per_loss,omitempty" yaml:"per_loss"`
}

// EntryFee describes the payment a player must make before a battle. The
// server only checks the paid flag handed over by the wallet layer.
type EntryFee struct {
	Required  bool   `json:"required" yaml:"required"`
	Amount    string `json:"amount,omitempty" yaml:"amount"`
	Currency  string `json:"currency,omitempty" yaml:"currency"`
	Recipient string `json:"recipient,omitempty" yaml:"recipient"`
}

type ReplaySection struct {
	StepDelayMs *int `json:"step_delay_ms,omitempty" yaml:"step_delay_ms"`
}

// File is the on-disk configuration layout.
type File struct {
	FighterList       []FighterEntry       `json:"fighter_list" yaml:"fighter_list" jsonschema:"required"`
	Server            *ServerSection       `json:"server,omitempty" yaml:"server"`
	Battle            *BattleSection       `json:"battle,omitempty" yaml:"battle"`
	RarityMultipliers map[string]float64   `json:"rarity_multipliers,omitempty" yaml:"rarity_multipliers"`
	Experience        *ExperienceSection   `json:"experience,omitempty" yaml:"experience"`
	EntryFee          *EntryFee            `json:"entry_fee,omitempty" yaml:"entry_fee"`
	Replay            *ReplaySection       `json:"replay,omitempty" yaml:"replay"`
	Messages          *engine.MessageTable `json:"messages,omitempty" yaml:"messages"`
}

// LoadedConfig contains the roster to seed and every runtime setting derived
// from the config file.
type LoadedConfig struct {
	Fighters          []game.Fighter
	ServerAddress     string
	Battle            engine.Config
	Messages          engine.MessageTable
	ExperiencePerWin  int
	ExperiencePerLoss int
	EntryFee          EntryFee
	ReplayStepDelay   time.Duration
}

const (
	defaultExperiencePerWin  = 50
	defaultExperiencePerLoss = 10
	defaultReplayStepDelay   = 1500 * time.Millisecond
)

// DefaultEntryFee is 1 USDC on Base.
func DefaultEntryFee() EntryFee {
	return EntryFee{
		Required:  true,
		Amount:    "1",
		Currency:  "USDC",
		Recipient: "0x742d35Cc6634C0532925a3b8D0C9e3e0C0e0e0e0",
	}
}

func decode(path string, b []byte, out *File) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, out)
	default:
		return json.Unmarshal(b, out)
	}
}

// LoadConfig reads the configuration file at path. YAML is used for .yaml
// and .yml files, JSON otherwise. It requires a non-empty `fighter_list`.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var f File
	if err := decode(path, b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	lc, err := f.Resolve()
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return lc, nil
}

// Resolve validates the file contents and applies defaults.
func (f *File) Resolve() (*LoadedConfig, error) {
	if len(f.FighterList) == 0 {
		return nil, fmt.Errorf("fighter_list is empty (provide 'fighter_list' array)")
	}

	fighters := make([]game.Fighter, 0, len(f.FighterList))
	ids := make(map[string]struct{}, len(f.FighterList))
	for _, e := range f.FighterList {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("fighter entry missing 'id'")
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("fighter '%s' missing 'name'", id)
		}
		if _, dup := ids[id]; dup {
			return nil, fmt.Errorf("duplicate fighter id '%s'", id)
		}
		ids[id] = struct{}{}
		if err := checkStats(id, e.BattleStats); err != nil {
			return nil, err
		}
		fighters = append(fighters, game.Fighter{
			ID:              id,
			TokenID:         e.TokenID,
			ContractAddress: e.ContractAddress,
			Name:            e.Name,
			Image:           e.Image,
			Owner:           e.Owner,
			Attributes:      e.Attributes,
			BattleStats:     e.BattleStats,
		})
	}

	battle := engine.DefaultConfig()
	if b := f.Battle; b != nil {
		setInt(&battle.MaxHealth, b.MaxHealth)
		setInt(&battle.MaxRounds, b.MaxRounds)
		setFloat(&battle.BaseAttackDamage, b.BaseAttackDamage)
		setFloat(&battle.BaseDefenseReduction, b.BaseDefenseReduction)
		setFloat(&battle.LevelMultiplier, b.LevelMultiplier)
		setFloat(&battle.CritSpeedDivisor, b.CritSpeedDivisor)
		setFloat(&battle.CritMultiplier, b.CritMultiplier)
	}
	for name, m := range f.RarityMultipliers {
		battle.RarityMultipliers[game.Rarity(strings.ToLower(strings.TrimSpace(name)))] = m
	}
	if err := battle.Validate(); err != nil {
		return nil, err
	}

	lc := &LoadedConfig{
		Fighters:          fighters,
		ServerAddress:     constants.DefaultServerAddr,
		Battle:            battle,
		Messages:          engine.DefaultMessages(),
		ExperiencePerWin:  defaultExperiencePerWin,
		ExperiencePerLoss: defaultExperiencePerLoss,
		EntryFee:          DefaultEntryFee(),
		ReplayStepDelay:   defaultReplayStepDelay,
	}
	if f.Server != nil && f.Server.Address != "" {
		lc.ServerAddress = f.Server.Address
	}
	if f.Messages != nil {
		lc.Messages = f.Messages.Merge(lc.Messages)
	}
	if x := f.Experience; x != nil {
		setInt(&lc.ExperiencePerWin, x.PerWin)
		setInt(&lc.ExperiencePerLoss, x.PerLoss)
		if lc.ExperiencePerWin < 0 || lc.ExperiencePerLoss < 0 {
			return nil, fmt.Errorf("experience rewards must be non-negative")
		}
	}
	if f.EntryFee != nil {
		lc.EntryFee = *f.EntryFee
	}
	if f.Replay != nil && f.Replay.StepDelayMs != nil {
		if *f.Replay.StepDelayMs < 0 {
			return nil, fmt.Errorf("replay.step_delay_ms must be non-negative")
		}
		lc.ReplayStepDelay = time.Duration(*f.Replay.StepDelayMs) * time.Millisecond
	}
	return lc, nil
}

func checkStats(id string, s game.BattleStats) error {
	for name, v := range map[string]int{
		"attack": s.Attack, "defense": s.Defense, "speed": s.Speed,
		"health": s.Health, "level": s.Level, "experience": s.Experience,
	} {
		if v < 0 {
			return fmt.Errorf("fighter '%s' has negative %s", id, name)
		}
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
