package history

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Seat is one player's part in a finished round
type Seat struct {
	Name     string `json:"name"`
	Hand     string `json:"hand"`
	Category string `json:"category"`
	Payout   int64  `json:"payout"`
}

// Round is the outcome of a single round of a game
type Round struct {
	Game    string    `json:"game"`
	Number  int       `json:"number"`
	Pot     int64     `json:"pot"`
	Share   int64     `json:"share"`
	Winners []Seat    `json:"winners"`
	Losers  []Seat    `json:"losers"`
	Started time.Time `json:"started"`
	Ended   time.Time `json:"ended"`
}

// Recorder stores finished rounds
type Recorder interface {
	Record(ctx context.Context, round *Round) error
}

// LogRecorder writes finished rounds to the log
type LogRecorder struct{}

// Record logs the round
func (LogRecorder) Record(_ context.Context, round *Round) error {
	winners := make([]string, len(round.Winners))
	for i, seat := range round.Winners {
		winners[i] = seat.Name
	}

	logrus.WithFields(logrus.Fields{
		"game":    round.Game,
		"round":   round.Number,
		"pot":     round.Pot,
		"share":   round.Share,
		"winners": winners,
	}).Info("round finished")

	return nil
}

// Multi records to every recorder and returns the first error
type Multi []Recorder

// Record records the round with each recorder
func (m Multi) Record(ctx context.Context, round *Round) error {
	var first error
	for _, r := range m {
		if err := r.Record(ctx, round); err != nil && first == nil {
			first = err
		}
	}

	return first
}
