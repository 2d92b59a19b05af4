package registry

import (
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// RoomRegistry holds every active room. Like the session registry it
// relies on the lobby for serialization.
type RoomRegistry struct {
	rooms []*entity.Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{}
}

func (that *RoomRegistry) Add(room *entity.Room) {
	that.rooms = append(that.rooms, room)
}

func (that *RoomRegistry) Remove(room *entity.Room) {
	for i, candidate := range that.rooms {
		if candidate == room {
			that.rooms = append(that.rooms[:i], that.rooms[i+1:]...)
			return
		}
	}
}

// FindByCreator - returns the room created by the named session, or
// nil. The creator name is fixed at room creation.
func (that *RoomRegistry) FindByCreator(name string) *entity.Room {
	for _, room := range that.rooms {
		if room.Creator == name {
			return room
		}
	}
	return nil
}

func (that *RoomRegistry) Len() int {
	return len(that.rooms)
}
