package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/replay"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/storage"
)

const (
	replayWriteWait = 5 * time.Second
	maxReplayDelay  = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// replayMessage is the envelope sent over the replay socket. Type is
// "frame" for each action and "summary" once at the end.
type replayMessage struct {
	Type    string          `json:"type"`
	Frame   *replay.Frame   `json:"frame,omitempty"`
	Summary *replay.Verdict `json:"summary,omitempty"`
}

func (h *ArenaHandler) replayNames(b *game.Battle) map[string]string {
	names := make(map[string]string, 2)
	for _, id := range []string{b.Player1FighterID, b.Player2FighterID} {
		if f, err := h.repo.GetFighterByID(id); err == nil {
			names[id] = f.Name
		}
	}
	return names
}

// replayDelay parses a ?delay_ms value, capped at maxReplayDelay. Empty or
// invalid input keeps def.
func replayDelay(s string, def time.Duration) time.Duration {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	// clamp before converting so huge values cannot overflow
	if limit := int(maxReplayDelay / time.Millisecond); n > limit {
		n = limit
	}
	return time.Duration(n) * time.Millisecond
}

// ReplayBattle streams a stored battle over a WebSocket, one frame per
// action, followed by a summary. ?delay_ms overrides the step delay.
func (h *ArenaHandler) ReplayBattle(c *gin.Context) {
	id := c.Param("battleID")
	if _, err := uuid.Parse(id); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.ErrInvalidBattleID)
		return
	}
	b, err := h.repo.GetBattleByBattleID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, constants.ErrBattleNotFound)
			return
		}
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchBattles)
		return
	}

	opts := replay.Options{
		Delay:    replayDelay(c.Query("delay_ms"), h.replay.StepDelay),
		Names:    h.replayNames(b),
		Messages: h.replay.Messages,
		Random:   h.replay.Random,
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("replay upgrade failed", err, logging.Fields{constants.LogFieldBattleID: id})
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	// The client never sends anything meaningful; a read error means it left.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(msg replayMessage) error {
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(replayWriteWait))
		return conn.WriteMessage(websocket.TextMessage, data)
	}

	err = replay.Play(ctx, b.BattleLog, opts, func(f replay.Frame) error {
		return send(replayMessage{Type: "frame", Frame: &f})
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Warn("replay aborted", logging.Fields{constants.LogFieldBattleID: id, "error": err.Error()})
		}
		return
	}
	summary := replay.Summary(b, opts)
	if err := send(replayMessage{Type: "summary", Summary: &summary}); err != nil {
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(replayWriteWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}
