package service

import (
	"errors"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

var ErrEmptyRoster = errors.New("no opponents available")

// PickOpponent chooses uniformly among roster fighters other than
// excludeID. pick(n) must return an index in [0,n).
func PickOpponent(roster []game.Fighter, excludeID string, pick func(n int) int) (*game.Fighter, error) {
	candidates := make([]*game.Fighter, 0, len(roster))
	for i := range roster {
		if roster[i].ID != excludeID {
			candidates = append(candidates, &roster[i])
		}
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyRoster
	}
	idx := pick(len(candidates))
	if idx < 0 || idx >= len(candidates) {
		idx = 0
	}
	return candidates[idx], nil
}
