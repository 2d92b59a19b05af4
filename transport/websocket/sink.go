package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// connSink emits outbound events onto one WebSocket connection. The
// mutex keeps a single writer on the connection; sends are
// fire-and-forget and write failures are only logged, the read loop
// notices the broken connection on its own.
type connSink struct {
	logger *slog.Logger
	conn   *websocket.Conn

	mu sync.Mutex
}

func newConnSink(logger *slog.Logger, conn *websocket.Conn) *connSink {
	return &connSink{
		logger: logger,
		conn:   conn,
	}
}

func (that *connSink) SendChat(sender, text string) {
	that.send(actionChatMessage, ChatPayload{Sender: sender, Text: text})
}

func (that *connSink) SendBoard(cells []string) {
	that.send(actionSetBoard, BoardPayload{Cells: cells})
}

func (that *connSink) LockBoard() {
	that.send(actionLockBoard, nil)
}

func (that *connSink) UnlockBoard() {
	that.send(actionUnlockBoard, nil)
}

func (that *connSink) send(action string, payload any) {
	message := Message{Action: action}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			that.logger.Error("failed to marshal payload", "action", action, "error", err)
			return
		}
		message.Payload = raw
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.WriteJSON(message); err != nil {
		that.logger.Debug("failed to write message", "action", action, "error", err)
	}
}
