package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind commandKind
		verb string
		args []string
	}{
		{name: "help", raw: "/help", kind: commandHelp, verb: "/help"},
		{name: "create", raw: "/create", kind: commandCreate, verb: "/create"},
		{name: "create shorthand", raw: "/c", kind: commandCreate, verb: "/c"},
		{name: "join with arg", raw: "/join alice", kind: commandJoin, verb: "/join", args: []string{"alice"}},
		{name: "join shorthand", raw: "/j alice", kind: commandJoin, verb: "/j", args: []string{"alice"}},
		{name: "invite", raw: "/invite bob", kind: commandInvite, verb: "/invite", args: []string{"bob"}},
		{name: "invite shorthand", raw: "/i bob", kind: commandInvite, verb: "/i", args: []string{"bob"}},
		{name: "leave", raw: "/leave", kind: commandLeave, verb: "/leave"},
		{name: "leave shorthand", raw: "/l", kind: commandLeave, verb: "/l"},
		{name: "unknown verb", raw: "/frobnicate", kind: commandUnknown, verb: "/frobnicate"},
		{name: "empty input", raw: "", kind: commandUnknown},
		{name: "whitespace only", raw: "   ", kind: commandUnknown},
		{name: "extra whitespace", raw: "  /j   alice  ", kind: commandJoin, verb: "/j", args: []string{"alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := parseCommand(tt.raw)

			assert.Equal(t, tt.kind, cmd.kind)
			assert.Equal(t, tt.verb, cmd.verb)
			if len(tt.args) == 0 {
				assert.Empty(t, cmd.args)
			} else {
				assert.Equal(t, tt.args, cmd.args)
			}
		})
	}
}
