package room

import (
	"errors"
	"fmt"

	"drawpoker-server/pkg/table"
)

// ErrNameTaken is returned when registering a name that is already in use
var ErrNameTaken = errors.New("name is already registered")

// ErrGameExists is returned when creating a game whose name is in use
var ErrGameExists = errors.New("game already exists")

// ErrNoGame is returned when joining a game that does not exist
var ErrNoGame = errors.New("game does not exist")

// ErrShiftEnded is returned after the pit boss has stopped
var ErrShiftEnded = errors.New("pit boss is not running")

// ErrNotRegistered is returned when an unregistered client tries to play
var ErrNotRegistered = table.UserError("You are not registered!")

// userMessage renders err as the text a client sees
// name is the player or game name the request was about
func userMessage(err error, name string) string {
	var userErr table.UserError

	switch {
	case errors.Is(err, ErrNameTaken):
		return fmt.Sprintf("User: %s already exists! Please register under another name.", name)
	case errors.Is(err, ErrGameExists):
		return fmt.Sprintf("%s already exists!", name)
	case errors.Is(err, ErrNoGame):
		return fmt.Sprintf("There is no game: %s", name)
	case errors.As(err, &userErr):
		return userErr.Error()
	default:
		return "Something went wrong, please try again."
	}
}
