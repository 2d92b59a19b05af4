package websocket

import "encoding/json"

// Inbound and outbound event names of the wire protocol.
const (
	actionSetUsername = "set-username"
	actionChatMessage = "chat-message"
	actionChatCommand = "chat-command"
	actionColumnClick = "column-click"

	actionSetBoard    = "set-board"
	actionLockBoard   = "lock-board"
	actionUnlockBoard = "unlock-board"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type UsernamePayload struct {
	Username string `json:"username"`
}

type ChatPayload struct {
	Sender string `json:"sender,omitempty"`
	Text   string `json:"text"`
}

type CommandPayload struct {
	Command string `json:"command"`
}

type ColumnPayload struct {
	Column int `json:"column"`
}

type BoardPayload struct {
	Cells []string `json:"cells"`
}
