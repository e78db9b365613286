package util

import (
	"github.com/google/uuid"
)

// RandomGameName generates a unique game name suitable for testing
func RandomGameName() string {
	return "game-" + uuid.New().String()[:8]
}
