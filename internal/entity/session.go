package entity

import "github.com/google/uuid"

// ServerSender is the reserved chat sender for system messages.
const ServerSender = "<Server>"

// Sink - emits outbound events toward one connected client. It is owned
// by the transport layer; sends are fire-and-forget and never block the
// event path.
type Sink interface {
	SendChat(sender, text string)
	SendBoard(cells []string)
	LockBoard()
	UnlockBoard()
}

// Session is one connected user's server-side state.
type Session struct {
	ID       uuid.UUID
	Username string
	Room     *Room // back-reference only, the room registry owns rooms

	sink Sink
}

func NewSession(id uuid.UUID, sink Sink) *Session {
	return &Session{
		ID:   id,
		sink: sink,
	}
}

// Named - reports whether the session has adopted a display name.
func (that *Session) Named() bool {
	return that.Username != ""
}

// Tell - sends a chat line to this session only.
func (that *Session) Tell(sender, text string) {
	that.sink.SendChat(sender, text)
}

// SetRoom - moves the session into a room (pushing the current board)
// or out of any room (locking the board view).
func (that *Session) SetRoom(room *Room) {
	that.Room = room

	if room == nil {
		that.sink.LockBoard()
		return
	}

	that.sink.SendBoard(room.Board.Cells())
}

// Unlock - marks the board interactive for this session.
func (that *Session) Unlock() {
	that.sink.UnlockBoard()
}
