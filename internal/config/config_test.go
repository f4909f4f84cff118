package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

const jsonConfig = `{
  "fighter_list": [
    {"id": "1", "name": "Cyber Warrior Alpha", "attributes": [{"trait_type": "Rarity", "value": "Epic"}],
     "battle_stats": {"attack": 85, "defense": 70, "speed": 90, "health": 100, "level": 5, "experience": 250}},
    {"id": "2", "name": "Neon Guardian", "attributes": [{"trait_type": "Rarity", "value": "Rare"}],
     "battle_stats": {"attack": 65, "defense": 95, "speed": 60, "health": 100, "level": 4, "experience": 180}}
  ],
  "server": {"address": ":9090"},
  "battle": {"max_rounds": 10},
  "rarity_multipliers": {"Mythic": 3},
  "experience": {"per_win": 75},
  "entry_fee": {"required": false},
  "replay": {"step_delay_ms": 250},
  "messages": {"victory": ["{winner} wins"]}
}`

func TestLoadConfigJSON(t *testing.T) {
	lc, err := LoadConfig(writeFile(t, "arena.json", jsonConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lc.Fighters) != 2 || lc.Fighters[0].Rarity() != game.RarityEpic {
		t.Fatalf("unexpected roster: %+v", lc.Fighters)
	}
	if lc.ServerAddress != ":9090" {
		t.Fatalf("expected :9090, got %s", lc.ServerAddress)
	}
	if lc.Battle.MaxRounds != 10 || lc.Battle.MaxHealth != 100 {
		t.Fatalf("battle overrides not applied: %+v", lc.Battle)
	}
	if lc.Battle.RarityMultipliers["mythic"] != 3 || lc.Battle.RarityMultipliers[game.RarityEpic] != 1.5 {
		t.Fatalf("rarity table not merged: %+v", lc.Battle.RarityMultipliers)
	}
	if lc.ExperiencePerWin != 75 || lc.ExperiencePerLoss != 10 {
		t.Fatalf("experience: %d/%d", lc.ExperiencePerWin, lc.ExperiencePerLoss)
	}
	if lc.EntryFee.Required {
		t.Fatalf("entry fee should be disabled")
	}
	if lc.ReplayStepDelay != 250*time.Millisecond {
		t.Fatalf("replay delay: %v", lc.ReplayStepDelay)
	}
	if len(lc.Messages.Victory) != 1 || len(lc.Messages.Attack) == 0 {
		t.Fatalf("messages not merged with defaults: %+v", lc.Messages)
	}
}

func TestLoadConfigYAMLDefaults(t *testing.T) {
	body := `
fighter_list:
  - id: "3"
    name: Quantum Assassin
    attributes:
      - trait_type: Rarity
        value: Legendary
    battle_stats: {attack: 95, defense: 55, speed: 100, health: 100, level: 7, experience: 420}
`
	lc, err := LoadConfig(writeFile(t, "arena.yaml", body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lc.Fighters[0].Rarity() != game.RarityLegendary {
		t.Fatalf("expected legendary, got %q", lc.Fighters[0].Rarity())
	}
	if lc.ServerAddress != ":8080" || lc.Battle.MaxRounds != 20 {
		t.Fatalf("defaults not applied: %+v", lc)
	}
	if !lc.EntryFee.Required || lc.EntryFee.Currency != "USDC" {
		t.Fatalf("default entry fee expected, got %+v", lc.EntryFee)
	}
	if lc.ReplayStepDelay != 1500*time.Millisecond {
		t.Fatalf("default replay delay expected, got %v", lc.ReplayStepDelay)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := map[string]string{
		"empty":     `{"fighter_list": []}`,
		"no id":     `{"fighter_list": [{"name": "x"}]}`,
		"no name":   `{"fighter_list": [{"id": "1"}]}`,
		"duplicate": `{"fighter_list": [{"id": "1", "name": "a"}, {"id": "1", "name": "b"}]}`,
		"negative":  `{"fighter_list": [{"id": "1", "name": "a", "battle_stats": {"attack": -1}}]}`,
		"rounds":    `{"fighter_list": [{"id": "1", "name": "a"}], "battle": {"max_rounds": 0}}`,
		"delay":     `{"fighter_list": [{"id": "1", "name": "a"}], "replay": {"step_delay_ms": -5}}`,
		"syntax":    `{"fighter_list": [`,
	}
	for name, body := range cases {
		p := writeFile(t, "c.json", body)
		_, err := LoadConfig(p)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !strings.Contains(err.Error(), p) {
			t.Fatalf("%s: error should name the file: %v", name, err)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
