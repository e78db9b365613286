package table

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"drawpoker-server/internal/rng"
	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/history"
	"github.com/stretchr/testify/require"
)

const (
	// waitLine keeps the player silent at its next prompt
	waitLine = "<wait>"

	// hangupLine closes the player's connection at its next prompt
	hangupLine = "<hangup>"
)

// turnLog records whose turn it was, in order
type turnLog struct {
	mu    sync.Mutex
	names []string
}

func (l *turnLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.names = append(l.names, name)
}

func (l *turnLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.names...)
}

func (l *turnLog) waitFor(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(l.get()) >= n
	}, 5*time.Second, time.Millisecond)
}

// scriptConn answers each prompt with the next line of its script
// Once the script runs out the player exits.
type scriptConn struct {
	name  string
	turns *turnLog
	lines chan string

	mu       sync.Mutex
	script   []string
	sent     []string
	prompts  int
	onPrompt func(n int)
	closed   bool
}

func newScriptConn(name string, turns *turnLog, script ...string) *scriptConn {
	return &scriptConn{
		name:   name,
		turns:  turns,
		lines:  make(chan string, 16),
		script: script,
	}
}

func (c *scriptConn) Lines() <-chan string {
	return c.lines
}

func (c *scriptConn) Send(lines ...string) error {
	c.mu.Lock()
	c.sent = append(c.sent, lines...)

	prompted := false
	for _, line := range lines {
		if line == commandRequest()[0] || strings.HasPrefix(line, "Enter your bet amount") {
			prompted = true
		}
	}

	if !prompted {
		c.mu.Unlock()
		return nil
	}

	c.prompts++
	n := c.prompts
	hook := c.onPrompt
	if c.turns != nil && lines[len(lines)-1] == "" {
		c.turns.add(c.name)
	}

	answer := "exit"
	if len(c.script) > 0 {
		answer = c.script[0]
		c.script = c.script[1:]
	}

	switch answer {
	case waitLine:
	case hangupLine:
		if !c.closed {
			c.closed = true
			close(c.lines)
		}
	default:
		if !c.closed {
			c.lines <- answer
		}
	}
	c.mu.Unlock()

	if hook != nil {
		hook(n)
	}

	return nil
}

func (c *scriptConn) sentLines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.sent...)
}

// fakeRecorder keeps every recorded round
type fakeRecorder struct {
	mu     sync.Mutex
	rounds []*history.Round
}

func (f *fakeRecorder) Record(_ context.Context, round *history.Round) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rounds = append(f.rounds, round)
	return nil
}

func (f *fakeRecorder) get() []*history.Round {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*history.Round(nil), f.rounds...)
}

func testOptions(rec history.Recorder) Options {
	return Options{
		Recorder: rec,
		NewDeck: func() *deck.Deck {
			return deck.NewWithGenerator(rng.NewSeeded(1))
		},
	}
}

// seat queues players on g in order
func seat(t *testing.T, g *Game, conns ...*scriptConn) []*Player {
	t.Helper()

	players := make([]*Player, 0, len(conns))
	for _, c := range conns {
		p := NewPlayer(c.name, 1000, c)
		require.NoError(t, g.RequestJoin(p))
		players = append(players, p)
	}

	return players
}

func runGame(t *testing.T, g *Game) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, g.Run(ctx))
}

func isReleased(p *Player) bool {
	select {
	case <-p.Left():
		return true
	default:
		return false
	}
}
