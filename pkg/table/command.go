package table

import (
	"strconv"
	"strings"
)

// CommandKind is the action a player takes on their turn
type CommandKind int

// command kinds
const (
	CommandFold CommandKind = iota + 1
	CommandCheck
	CommandBet
	CommandExit
)

func (k CommandKind) String() string {
	switch k {
	case CommandFold:
		return "fold"
	case CommandCheck:
		return "check"
	case CommandBet:
		return "bet"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command is a parsed turn command
// A bet without an amount asks the game to prompt for one
type Command struct {
	Kind      CommandKind
	Amount    int64
	HasAmount bool
}

// ErrInvalidInput is returned for anything that isn't a command or number
// The message mirrors what the client sees
type ErrInvalidInput string

func (e ErrInvalidInput) Error() string {
	return "Invalid client input! " + string(e)
}

// ParseCommand parses a turn command, case-insensitive
// Accepted: fold, check, exit, bet, bet <amount>
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrInvalidInput(line)
	}

	var kind CommandKind
	switch fields[0] {
	case "fold":
		kind = CommandFold
	case "check":
		kind = CommandCheck
	case "exit":
		kind = CommandExit
	case "bet":
		kind = CommandBet
	default:
		return Command{}, ErrInvalidInput(line)
	}

	switch {
	case len(fields) == 1:
		return Command{Kind: kind}, nil
	case len(fields) == 2 && kind == CommandBet:
		amount, err := ParseAmount(fields[1])
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: kind, Amount: amount, HasAmount: true}, nil
	default:
		return Command{}, ErrInvalidInput(line)
	}
}

// ParseAmount parses a bet amount
// Range checks belong to the game, only the syntax is checked here
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidInput(s)
	}

	return amount, nil
}
