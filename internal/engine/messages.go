package engine

import "strings"

// MessageKind selects a group of flavor-text templates.
type MessageKind string

const (
	MessageAttack   MessageKind = "attack"
	MessageDefend   MessageKind = "defend"
	MessageCritical MessageKind = "critical"
	MessageVictory  MessageKind = "victory"
)

// MessageTable holds the flavor-text templates shown while a battle is
// replayed. Templates may contain {attacker}, {defender} and {winner}.
type MessageTable struct {
	Attack   []string `json:"attack" yaml:"attack"`
	Defend   []string `json:"defend" yaml:"defend"`
	Critical []string `json:"critical" yaml:"critical"`
	Victory  []string `json:"victory" yaml:"victory"`
}

// Names fills template placeholders. Empty names fall back to generic ones.
type Names struct {
	Attacker string
	Defender string
	Winner   string
}

// DefaultMessages returns the built-in flavor text.
func DefaultMessages() MessageTable {
	return MessageTable{
		Attack: []string{
			"{attacker} launches a devastating attack!",
			"{attacker} strikes with precision!",
			"{attacker} unleashes their power!",
			"{attacker} delivers a crushing blow!",
		},
		Defend: []string{
			"{defender} braces for impact!",
			"{defender} raises their defenses!",
			"{defender} prepares to counter!",
		},
		Critical: []string{
			"Critical hit! Maximum damage dealt!",
			"A perfect strike! Critical damage!",
			"Devastating critical attack!",
		},
		Victory: []string{
			"{winner} emerges victorious!",
			"{winner} claims victory in the arena!",
			"{winner} stands triumphant!",
		},
	}
}

func (m MessageTable) templates(kind MessageKind) []string {
	switch kind {
	case MessageAttack:
		return m.Attack
	case MessageDefend:
		return m.Defend
	case MessageCritical:
		return m.Critical
	case MessageVictory:
		return m.Victory
	}
	return nil
}

// Merge returns m with every empty group filled from fallback.
func (m MessageTable) Merge(fallback MessageTable) MessageTable {
	if len(m.Attack) == 0 {
		m.Attack = fallback.Attack
	}
	if len(m.Defend) == 0 {
		m.Defend = fallback.Defend
	}
	if len(m.Critical) == 0 {
		m.Critical = fallback.Critical
	}
	if len(m.Victory) == 0 {
		m.Victory = fallback.Victory
	}
	return m
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Pick selects a template of the given kind uniformly with rnd and fills in
// the first occurrence of each placeholder.
func (m MessageTable) Pick(kind MessageKind, rnd RandomSource, names Names) string {
	ts := m.templates(kind)
	if len(ts) == 0 {
		return ""
	}
	if rnd == nil {
		rnd = DefaultRandom
	}
	idx := int(rnd() * float64(len(ts)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ts) {
		idx = len(ts) - 1
	}
	msg := ts[idx]
	msg = strings.Replace(msg, "{attacker}", orDefault(names.Attacker, "Fighter"), 1)
	msg = strings.Replace(msg, "{defender}", orDefault(names.Defender, "Opponent"), 1)
	msg = strings.Replace(msg, "{winner}", orDefault(names.Winner, "Champion"), 1)
	return msg
}
