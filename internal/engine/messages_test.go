package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagePick(t *testing.T) {
	table := DefaultMessages()

	assert.Equal(t, "Ares launches a devastating attack!",
		table.Pick(MessageAttack, constRandom(0), Names{Attacker: "Ares"}))
	assert.Equal(t, "Ares delivers a crushing blow!",
		table.Pick(MessageAttack, constRandom(0.99), Names{Attacker: "Ares"}))
	assert.Equal(t, "Champion stands triumphant!",
		table.Pick(MessageVictory, constRandom(0.9), Names{}))
	assert.Equal(t, "Opponent braces for impact!",
		table.Pick(MessageDefend, constRandom(0), Names{}))
	assert.Equal(t, "", table.Pick(MessageKind("taunt"), constRandom(0), Names{}))
}

func TestMessagePick_FirstPlaceholderOnly(t *testing.T) {
	table := MessageTable{Attack: []string{"{attacker} hits {attacker}"}}
	assert.Equal(t, "Kai hits {attacker}", table.Pick(MessageAttack, constRandom(0.5), Names{Attacker: "Kai"}))
}

func TestMessageMerge(t *testing.T) {
	custom := MessageTable{Victory: []string{"{winner} wins."}}.Merge(DefaultMessages())
	assert.Equal(t, []string{"{winner} wins."}, custom.Victory)
	assert.Equal(t, DefaultMessages().Attack, custom.Attack)
	assert.Len(t, custom.Critical, 3)
}
