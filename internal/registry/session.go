package registry

import (
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// SessionRegistry holds every live session in connection order. It is
// not safe for concurrent use on its own; the lobby serializes all
// access.
type SessionRegistry struct {
	sessions []*entity.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{}
}

func (that *SessionRegistry) Add(session *entity.Session) {
	that.sessions = append(that.sessions, session)
}

func (that *SessionRegistry) Remove(session *entity.Session) {
	for i, candidate := range that.sessions {
		if candidate == session {
			that.sessions = append(that.sessions[:i], that.sessions[i+1:]...)
			return
		}
	}
}

// FindByName - returns the first session with the given display name,
// or nil.
func (that *SessionRegistry) FindByName(name string) *entity.Session {
	for _, session := range that.sessions {
		if session.Username == name {
			return session
		}
	}
	return nil
}

// All - returns the sessions in connection order for broadcasting.
func (that *SessionRegistry) All() []*entity.Session {
	return that.sessions
}

func (that *SessionRegistry) Len() int {
	return len(that.sessions)
}
