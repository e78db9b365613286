package util

import (
	"fmt"
	"time"

	"drawpoker-server/internal/rng"
)

var adjectives = []string{
	"Lucky", "Bluffing", "Stoic", "Sly", "Reckless", "Patient", "Cunning", "Steady", "Nervous", "Bold", "Quiet",
	"Grinning", "Shuffling", "Stacked", "Busted", "Wild", "Tight", "Loose", "Sharp", "Fearless", "Cool",
	"Sleepy", "Chatty", "Crafty",
}

var animals = []string{
	"Dog", "Cat", "Otter", "Shark", "Fox", "Wolf", "Owl", "Hawk", "Badger", "Raccoon", "Tiger",
	"Bear", "Mongoose", "Weasel", "Panda", "Lizard", "Eagle", "Bison", "Heron", "Moose", "Lynx",
	"Coyote", "Falcon", "Gecko",
}

// random is safe for concurrent use, sessions pick names in parallel
var random rng.Generator = rng.NewSeeded(time.Now().UnixNano())

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
