package game

import (
	"strings"

	"github.com/samdwyer/terminalquests/internal/world"
)

// Command is an exploration command.
type Command string

const (
	CmdNorth   Command = "north"
	CmdSouth   Command = "south"
	CmdEast    Command = "east"
	CmdWest    Command = "west"
	CmdLook    Command = "look"
	CmdStats   Command = "stats"
	CmdHeal    Command = "heal"
	CmdHelp    Command = "help"
	CmdQuit    Command = "quit"
	CmdUnknown Command = ""
)

const helpText = "Commands: north, south, east, west, look, stats, heal, help, quit"

// directions maps movement commands to unit deltas; north is -y.
var directions = map[Command]world.Pos{
	CmdNorth: {X: 0, Y: -1},
	CmdSouth: {X: 0, Y: 1},
	CmdWest:  {X: -1, Y: 0},
	CmdEast:  {X: 1, Y: 0},
}

// ParseCommand normalizes raw input into a Command.
func ParseCommand(input string) Command {
	cmd := Command(strings.ToLower(strings.TrimSpace(input)))
	switch cmd {
	case CmdNorth, CmdSouth, CmdEast, CmdWest, CmdLook, CmdStats, CmdHeal, CmdHelp, CmdQuit:
		return cmd
	default:
		return CmdUnknown
	}
}

// Delta returns the movement delta for a movement command.
func (c Command) Delta() (world.Pos, bool) {
	d, ok := directions[c]
	return d, ok
}
