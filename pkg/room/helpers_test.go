package room

import (
	"context"
	"sync"
	"testing"
	"time"

	"drawpoker-server/pkg/table"
)

type fakeConn struct {
	lines chan string

	mu     sync.Mutex
	sent   []string
	closed bool
}

// newFakeConn returns a connection with its input already queued
func newFakeConn(lines ...string) *fakeConn {
	c := &fakeConn{lines: make(chan string, len(lines)+1)}
	for _, line := range lines {
		c.lines <- line
	}

	return c
}

func (f *fakeConn) Lines() <-chan string {
	return f.lines
}

func (f *fakeConn) Send(lines ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, lines...)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func (f *fakeConn) RemoteAddr() string {
	return "127.0.0.1:1234"
}

func (f *fakeConn) sentLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.sent...)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}

// startPitBoss returns a running pit boss that stops with the test
func startPitBoss(t *testing.T) (*PitBoss, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pb := NewPitBoss(Settings{StartingChips: 10000})
	pb.StartShift(ctx)

	t.Cleanup(func() {
		cancel()
		pb.Wait()
	})

	return pb, cancel
}

func newPlayer(name string) *table.Player {
	return table.NewPlayer(name, 10000, newFakeConn())
}
