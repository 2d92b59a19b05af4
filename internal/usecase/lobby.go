package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/registry"
)

const recordTimeout = 5 * time.Second

type resultRecorder interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

// Lobby owns the session and room registries and processes every
// inbound event. A single mutex serializes events, so each one runs to
// completion before the next and no handler ever observes half-updated
// registry or room state.
type Lobby struct {
	mu     sync.Mutex
	logger *slog.Logger

	sessions *registry.SessionRegistry
	rooms    *registry.RoomRegistry

	results resultRecorder // optional, nil disables the archive
}

func NewLobby(logger *slog.Logger, sessions *registry.SessionRegistry, rooms *registry.RoomRegistry, results resultRecorder) *Lobby {
	return &Lobby{
		logger:   logger.With("component", "lobby"),
		sessions: sessions,
		rooms:    rooms,
		results:  results,
	}
}

// Connect - registers a new session around the transport's sink and
// assigns its id.
func (that *Lobby) Connect(sink entity.Sink) *entity.Session {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := entity.NewSession(uuid.New(), sink)
	that.sessions.Add(session)

	that.logger.Info("user connected", "sessionID", session.ID.String())

	return session
}

// Disconnect - announces the quit, removes the session from its room
// and drops it from the registry, all under one event.
func (that *Lobby) Disconnect(session *entity.Session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.logger.Info("user disconnected", "sessionID", session.ID.String(), "username", session.Username)

	if session.Named() {
		that.broadcast(session, entity.ServerSender, session.Username+" quitted")
	}

	if session.Room != nil {
		that.removeParticipant(session)
	}

	that.sessions.Remove(session)
}

// SetUsername - adopts a display name, first set wins. Later attempts
// are silently ignored.
func (that *Lobby) SetUsername(session *entity.Session, name string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if session.Named() {
		return
	}

	session.Username = name
	that.logger.Info("username set", "sessionID", session.ID.String(), "username", name)

	that.broadcast(session, entity.ServerSender, name+" joined")
}

// ChatMessage - relays a chat line from a named session to every other
// named session. Unnamed senders are ignored.
func (that *Lobby) ChatMessage(session *entity.Session, text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !session.Named() {
		return
	}

	that.broadcast(session, session.Username, text)
}

// ColumnClick - forwards a placement to the session's room. Spectators
// and roomless sessions are no-ops; everything else is the room's call.
func (that *Lobby) ColumnClick(session *entity.Session, column int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room := session.Room
	if room == nil || !room.IsPlayer(session) {
		return
	}

	if !room.Place(session, column) {
		return
	}

	// The turn does not advance on a winning move, so the mover still
	// sits at Participants[Turn].
	winner := room.Participants[room.Turn]
	loser := room.Participants[1-room.Turn]

	winner.Tell(entity.ServerSender, "You won!")
	loser.Tell(entity.ServerSender, "You lost.")

	that.recordResult(room, winner, loser)
	that.teardownRoom(room)
}

// Command - parses and dispatches a chat command. Unrecognized verbs
// are dropped without a reply.
func (that *Lobby) Command(session *entity.Session, text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	cmd := parseCommand(text)

	switch cmd.kind {
	case commandHelp:
		that.handleHelp(session)
	case commandCreate:
		that.handleCreate(session)
	case commandJoin:
		that.handleJoin(session, cmd)
	case commandInvite:
		that.handleInvite(session, cmd)
	case commandLeave:
		that.handleLeave(session)
	case commandUnknown:
	}
}

func (that *Lobby) handleHelp(session *entity.Session) {
	session.Tell(entity.ServerSender, "Available commands:")
	session.Tell(entity.ServerSender, " - /help - Show this message")
	session.Tell(entity.ServerSender, " - /c /create - Create a new match")
	session.Tell(entity.ServerSender, " - /j /join - Join a match")
	session.Tell(entity.ServerSender, " - /i /invite - Invite someone to a match")
	session.Tell(entity.ServerSender, " - /l /leave - Leave current match")
}

func (that *Lobby) handleCreate(session *entity.Session) {
	if session.Room != nil {
		session.Tell(entity.ServerSender, "You need to leave your current board first!")
	}

	room := entity.NewRoom(session.Username)

	// A creator still occupying another room cannot enter the new one,
	// and an empty room is never registered.
	if !room.AddParticipant(session) {
		return
	}

	that.rooms.Add(room)
	that.logger.Info("room created", "creator", session.Username, "sessionID", session.ID.String())

	session.Tell(entity.ServerSender, "Room created. Waiting for an adversary")
	that.broadcast(session, entity.ServerSender, session.Username+" has created a room")
}

func (that *Lobby) handleJoin(session *entity.Session, cmd command) {
	if len(cmd.args) < 1 {
		session.Tell(entity.ServerSender, fmt.Sprintf("Usage: %s <creator username>", cmd.verb))
		return
	}

	if session.Room != nil {
		session.Tell(entity.ServerSender, "You need to leave your current board first!")
	}

	room := that.rooms.FindByCreator(cmd.args[0])
	if room == nil {
		// Unknown creators fail without a reply, unlike /invite.
		return
	}

	if !room.AddParticipant(session) {
		return
	}

	session.Tell(entity.ServerSender, fmt.Sprintf("You joined %s's board", room.Creator))

	for _, participant := range room.Participants {
		if participant != session {
			participant.Tell(entity.ServerSender, session.Username+" joined the board")
		}
	}
}

func (that *Lobby) handleInvite(session *entity.Session, cmd command) {
	if len(cmd.args) < 1 {
		session.Tell(entity.ServerSender, fmt.Sprintf("Usage: %s <target username>", cmd.verb))
		return
	}

	if session.Room == nil {
		session.Tell(entity.ServerSender, "You must already be in a board to invite users.")
		return
	}

	if session.Username == cmd.args[0] {
		session.Tell(entity.ServerSender, "You can't invite yourself!")
		return
	}

	target := that.sessions.FindByName(cmd.args[0])
	if target == nil {
		session.Tell(entity.ServerSender, "There isn't any user with username "+cmd.args[0])
		return
	}

	session.Tell(entity.ServerSender, "Inviting user "+target.Username)
	target.Tell(entity.ServerSender, fmt.Sprintf("User %s is inviting you to join his/her board", session.Username))

	if target.Room != nil {
		target.Tell(entity.ServerSender, fmt.Sprintf("To join him/her, leave your current board with /l and type /j %s", session.Username))
		return
	}

	target.Tell(entity.ServerSender, fmt.Sprintf("To join him/her, type /j %s", session.Username))
}

func (that *Lobby) handleLeave(session *entity.Session) {
	room := session.Room
	if room == nil {
		session.Tell(entity.ServerSender, "You must be in a board to be able to leave.")
		return
	}

	session.Tell(entity.ServerSender, "You left the board.")

	for _, participant := range room.Participants {
		if participant != session {
			participant.Tell(entity.ServerSender, session.Username+" left the board.")
		}
	}

	that.removeParticipant(session)
}

// removeParticipant - a leaving spectator detaches alone; a leaving
// player takes the whole room down, whatever the reason for leaving.
func (that *Lobby) removeParticipant(session *entity.Session) {
	room := session.Room
	if room == nil {
		return
	}

	if !room.IsPlayer(session) {
		room.RemoveSpectator(session)
		return
	}

	that.teardownRoom(room)
}

// teardownRoom - clears every participant's room reference, locks their
// boards and drops the room from the registry.
func (that *Lobby) teardownRoom(room *entity.Room) {
	for _, participant := range room.Participants {
		participant.SetRoom(nil)
	}

	room.Participants = nil
	that.rooms.Remove(room)

	that.logger.Info("room torn down", "creator", room.Creator)
}

// broadcast - sends a chat line to every named session except the
// origin.
func (that *Lobby) broadcast(origin *entity.Session, sender, text string) {
	for _, session := range that.sessions.All() {
		if session != origin && session.Named() {
			session.Tell(sender, text)
		}
	}
}

// recordResult - archives a finished game off the event path. Archive
// failures are logged and never surface to the players.
func (that *Lobby) recordResult(room *entity.Room, winner, loser *entity.Session) {
	if that.results == nil {
		return
	}

	result := &entity.GameResult{
		ID:         uuid.NewString(),
		Creator:    room.Creator,
		Winner:     winner.Username,
		Loser:      loser.Username,
		FinishedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := that.results.Save(ctx, result); err != nil {
			that.logger.Error("failed to save game result", "resultID", result.ID, "error", err)
		}
	}()
}
