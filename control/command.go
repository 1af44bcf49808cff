// Package control defines lightweight command messages posted to the
// application command loop. The command loop is the only goroutine that
// touches the encounter tracker.
package control

import "VorkathHelper/encounter"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdEvent CommandType = iota
	CmdReset
)

func (c CommandType) String() string {
	switch c {
	case CmdEvent:
		return "event"
	case CmdReset:
		return "reset"
	}
	return "unknown"
}

// Command is the message sent to AppManager.commandLoop. The optional
// Reply channel is signalled once the command has been applied.
type Command struct {
	Type  CommandType
	Event encounter.Event // set for CmdEvent
	Reply chan error      // optional reply channel
}
