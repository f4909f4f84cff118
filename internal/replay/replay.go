// Package replay turns a stored battle log into a paced sequence of frames
// with flavor text. Replaying never modifies the stored log.
package replay

import (
	"context"
	"time"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/engine"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

// Frame is one replayed action.
type Frame struct {
	Index           int               `json:"index"`
	Total           int               `json:"total"`
	Record          game.ActionRecord `json:"record"`
	Message         string            `json:"message"`
	CriticalMessage string            `json:"critical_message,omitempty"`
}

// Verdict closes a replay.
type Verdict struct {
	Result          game.Result `json:"result"`
	WinnerFighterID string      `json:"winner_fighter_id,omitempty"`
	Message         string      `json:"message"`
}

type Options struct {
	// Delay is the pause between two frames.
	Delay time.Duration
	// Names maps fighter ids to display names.
	Names    map[string]string
	Messages engine.MessageTable
	Random   engine.RandomSource
}

const drawMessage = "The battle ends in a draw!"

func (o Options) random() engine.RandomSource {
	if o.Random == nil {
		return engine.DefaultRandom
	}
	return o.Random
}

// Play emits one frame per record, pausing opts.Delay between frames. It
// stops early when ctx is done or emit fails and returns that error.
func Play(ctx context.Context, log []game.ActionRecord, opts Options, emit func(Frame) error) error {
	records := make([]game.ActionRecord, len(log))
	copy(records, log)
	rnd := opts.random()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for i, rec := range records {
		if i > 0 && opts.Delay > 0 {
			if timer == nil {
				timer = time.NewTimer(opts.Delay)
			} else {
				timer.Reset(opts.Delay)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		names := engine.Names{Attacker: opts.Names[rec.Attacker], Defender: opts.Names[rec.Defender]}
		frame := Frame{
			Index:   i,
			Total:   len(records),
			Record:  rec,
			Message: opts.Messages.Pick(engine.MessageAttack, rnd, names),
		}
		if rec.Critical {
			frame.CriticalMessage = opts.Messages.Pick(engine.MessageCritical, rnd, names)
		}
		if err := emit(frame); err != nil {
			return err
		}
	}
	return nil
}

// Summary builds the closing line for a stored battle.
func Summary(b *game.Battle, opts Options) Verdict {
	if b.Result == game.ResultDraw || b.WinnerFighterID == nil {
		return Verdict{Result: game.ResultDraw, Message: drawMessage}
	}
	winner := *b.WinnerFighterID
	return Verdict{
		Result:          game.ResultWin,
		WinnerFighterID: winner,
		Message:         opts.Messages.Pick(engine.MessageVictory, opts.random(), engine.Names{Winner: opts.Names[winner]}),
	}
}
