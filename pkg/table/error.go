package table

import (
	"errors"
	"fmt"
)

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrGameFull is returned when a join would seat more than MaxPlayers
var ErrGameFull = UserError(fmt.Sprintf("This game is full. %d player max.", MaxPlayers))

// ErrGameClosed is returned when joining a game whose last player already left
var ErrGameClosed = UserError("This game has ended.")

// ErrAlreadySeated is returned when a player tries to join a game twice
var ErrAlreadySeated = UserError("You are already in this game.")

// ErrDisconnected is returned when a player's connection closed while the game waited on it
var ErrDisconnected = errors.New("player disconnected")

// ErrTurnTimeout is returned when a player did not answer a prompt in time
var ErrTurnTimeout = errors.New("turn timed out")
