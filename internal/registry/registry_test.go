package registry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

func TestSessionRegistry(t *testing.T) {
	reg := NewSessionRegistry()

	alice := entity.NewSession(uuid.New(), nil)
	alice.Username = "alice"
	bob := entity.NewSession(uuid.New(), nil)
	bob.Username = "bob"

	reg.Add(alice)
	reg.Add(bob)

	// Then: lookups find sessions by name, in connection order
	require.Equal(t, 2, reg.Len())
	assert.Same(t, alice, reg.FindByName("alice"))
	assert.Same(t, bob, reg.FindByName("bob"))
	assert.Nil(t, reg.FindByName("carol"))
	assert.Equal(t, []*entity.Session{alice, bob}, reg.All())

	// When: a session is removed
	reg.Remove(alice)

	// Then: it is gone and the rest stay
	assert.Equal(t, 1, reg.Len())
	assert.Nil(t, reg.FindByName("alice"))
	assert.Same(t, bob, reg.FindByName("bob"))

	// Removing twice is harmless
	reg.Remove(alice)
	assert.Equal(t, 1, reg.Len())
}

func TestRoomRegistry(t *testing.T) {
	reg := NewRoomRegistry()

	first := entity.NewRoom("alice")
	second := entity.NewRoom("bob")

	reg.Add(first)
	reg.Add(second)

	require.Equal(t, 2, reg.Len())
	assert.Same(t, first, reg.FindByCreator("alice"))
	assert.Same(t, second, reg.FindByCreator("bob"))
	assert.Nil(t, reg.FindByCreator("carol"))

	reg.Remove(first)

	assert.Equal(t, 1, reg.Len())
	assert.Nil(t, reg.FindByCreator("alice"))
}
