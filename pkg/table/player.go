package table

import (
	"sync"

	"drawpoker-server/pkg/poker"
	"github.com/sirupsen/logrus"
)

// Conn is how a game talks to a seated player
// Lines is closed when the underlying connection goes away
type Conn interface {
	Lines() <-chan string
	Send(lines ...string) error
}

// Player is a connected player
// The session owns the player; a game borrows it from the moment it is
// queued until it is released
type Player struct {
	name string
	conn Conn

	chips      int64
	bet        int64
	lastBet    int64
	alreadyBet bool
	hasActed   bool
	exiting    bool
	idleTurns  int
	hand       *poker.Hand

	mu   sync.Mutex
	left chan struct{}
}

// NewPlayer returns a new player with a starting chip stack
func NewPlayer(name string, chips int64, conn Conn) *Player {
	left := make(chan struct{})
	close(left)

	return &Player{
		name:  name,
		conn:  conn,
		chips: chips,
		left:  left,
	}
}

// Name returns the display name
func (p *Player) Name() string {
	return p.name
}

// SetName changes the display name
// It must only be called while the player is not borrowed by a game
func (p *Player) SetName(name string) {
	p.name = name
}

// Chips returns the chip stack
// Only safe to call from the game's run loop or when the player is not in a game
func (p *Player) Chips() int64 {
	return p.chips
}

// Bet returns the player's current bet for the round
func (p *Player) Bet() int64 {
	return p.bet
}

// Hand returns the current hand, or nil before the first deal
func (p *Player) Hand() *poker.Hand {
	return p.hand
}

// Exiting returns true if the player left the last game it was seated at
func (p *Player) Exiting() bool {
	return p.exiting
}

// Left returns a channel that is closed when the game releases the player
func (p *Player) Left() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.left
}

// Send sends lines to the player
// Write errors are logged; a dead connection surfaces on the next read
func (p *Player) Send(lines ...string) {
	if err := p.conn.Send(lines...); err != nil {
		logrus.WithError(err).WithField("player", p.name).Debug("could not send to player")
	}
}

// borrow arms the left channel before the player is handed to a game
func (p *Player) borrow() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.left = make(chan struct{})
	p.exiting = false
}

// release closes the left channel exactly once per borrow
func (p *Player) release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	select {
	case <-p.left:
	default:
		close(p.left)
	}
}

// resetRound puts the gameplay fields back to neutral
func (p *Player) resetRound() {
	p.bet = 0
	p.lastBet = 0
	p.alreadyBet = false
	p.hasActed = false
}
