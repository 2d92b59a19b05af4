package usecase

import "strings"

// commandKind is the closed set of chat command variants. Parsing maps
// every verb onto one of these, so dispatch is an exhaustive switch
// instead of a string fallthrough.
type commandKind int

const (
	commandUnknown commandKind = iota
	commandHelp
	commandCreate
	commandJoin
	commandInvite
	commandLeave
)

type command struct {
	kind commandKind
	verb string
	args []string
}

// parseCommand - splits a raw chat command on whitespace and classifies
// the verb. Unknown verbs parse fine and are dropped by the dispatcher.
func parseCommand(raw string) command {
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return command{kind: commandUnknown}
	}

	cmd := command{
		verb: parts[0],
		args: parts[1:],
	}

	switch parts[0] {
	case "/help":
		cmd.kind = commandHelp
	case "/c", "/create":
		cmd.kind = commandCreate
	case "/j", "/join":
		cmd.kind = commandJoin
	case "/i", "/invite":
		cmd.kind = commandInvite
	case "/l", "/leave":
		cmd.kind = commandLeave
	default:
		cmd.kind = commandUnknown
	}

	return cmd
}
