package console

import (
	"strconv"
	"strings"
)

const (
	actionNew   = "new"
	actionGuess = "guess"
	actionState = "state"
	actionHelp  = "help"
	actionQuit  = "quit"
)

// Message is one line of player input split into an action and its arguments.
type Message struct {
	Action string
	Args   []string
}

// parseMessage - a line starting with a number is a guess.
func parseMessage(line string) Message {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Message{}
	}

	if _, err := strconv.Atoi(fields[0]); err == nil {
		return Message{Action: actionGuess, Args: fields}
	}

	return Message{Action: fields[0], Args: fields[1:]}
}
