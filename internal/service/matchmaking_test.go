package service

import (
	"errors"
	"testing"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

func TestPickOpponent(t *testing.T) {
	roster := []game.Fighter{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		f, err := PickOpponent(roster, "2", func(n int) int {
			if n != 2 {
				t.Fatalf("expected 2 candidates, got %d", n)
			}
			return i
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.ID == "2" {
			t.Fatalf("challenger picked as opponent")
		}
		seen[f.ID] = true
	}
	if !seen["1"] || !seen["3"] {
		t.Fatalf("expected both candidates reachable, got %v", seen)
	}

	f, err := PickOpponent(roster, "1", func(int) int { return 99 })
	if err != nil || f.ID != "2" {
		t.Fatalf("out-of-range pick should fall back to first candidate, got %v %v", f, err)
	}

	if _, err := PickOpponent([]game.Fighter{{ID: "1"}}, "1", func(int) int { return 0 }); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
}
