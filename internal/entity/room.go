package entity

import "fmt"

const (
	StatusWaiting = "waiting"
	StatusOngoing = "ongoing"
)

// playerSlots - participants at index 0 and 1 are the players, everyone
// beyond them spectates.
const playerSlots = 2

// Room is one game instance: a board, the ordered participant list and
// the turn state. Registry membership and teardown are handled by the
// lobby, never by the room itself.
type Room struct {
	// Creator is the display name of the session that created the room,
	// fixed at creation. Room lookup keys on it.
	Creator string

	Participants []*Session
	Board        Board
	Turn         int
}

func NewRoom(creator string) *Room {
	return &Room{
		Creator: creator,
	}
}

// Status - derived from the participant count; a finished room is torn
// down immediately and is never observable.
func (that *Room) Status() string {
	if len(that.Participants) < playerSlots {
		return StatusWaiting
	}
	return StatusOngoing
}

// IsPlayer - reports whether the session occupies one of the two player
// slots.
func (that *Room) IsPlayer(session *Session) bool {
	for i, participant := range that.Participants {
		if i >= playerSlots {
			break
		}
		if participant == session {
			return true
		}
	}
	return false
}

// AddParticipant - appends the session as player or spectator. A session
// already occupying a room is refused. When the second player arrives
// the game starts: colors are announced and both boards unlock.
func (that *Room) AddParticipant(session *Session) bool {
	if session.Room != nil {
		return false
	}

	that.Participants = append(that.Participants, session)
	session.SetRoom(that)

	if len(that.Participants) == playerSlots {
		first, second := that.Participants[0], that.Participants[1]

		first.Tell(ServerSender, "Your color is green. You start!")
		second.Tell(ServerSender, fmt.Sprintf("Your color is blue. %s starts.", first.Username))

		first.Unlock()
		second.Unlock()
	}

	return true
}

// RemoveSpectator - detaches a spectator and locks its board view. The
// room keeps playing. Player removal always goes through the lobby's
// room teardown instead.
func (that *Room) RemoveSpectator(session *Session) {
	for i, participant := range that.Participants {
		if participant == session {
			that.Participants = append(that.Participants[:i], that.Participants[i+1:]...)
			session.SetRoom(nil)
			return
		}
	}
}

// Place - drops a token for the mover. The move is silently ignored
// unless the room is ongoing, it is exactly the mover's turn and the
// column has space. The updated board is pushed to every participant.
// Reports whether the move completed a winning run; on a win the turn
// does not advance, so Participants[Turn] is the winner.
func (that *Room) Place(mover *Session, column int) bool {
	if that.Status() != StatusOngoing {
		return false
	}

	if mover != that.Participants[that.Turn] {
		return false
	}

	color := ColorGreen
	if that.Turn == 1 {
		color = ColorBlue
	}

	if !that.Board.Drop(column, color) {
		return false
	}

	for _, participant := range that.Participants {
		participant.sink.SendBoard(that.Board.Cells())
	}

	if that.Board.HasWinner() {
		return true
	}

	that.Turn = 1 - that.Turn

	return false
}
