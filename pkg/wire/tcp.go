package wire

import (
	"bufio"
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10

// TCPConn is a line based client connection
type TCPConn struct {
	conn        net.Conn
	readTimeout time.Duration
	lines       chan string

	writeLock sync.Mutex
	closeOnce sync.Once
	closed    chan struct{}
}

// NewTCPConn starts reading lines from conn
// A client that sends nothing for readTimeout is disconnected, 0 waits forever.
func NewTCPConn(conn net.Conn, readTimeout time.Duration) *TCPConn {
	c := &TCPConn{
		conn:        conn,
		readTimeout: readTimeout,
		lines:       make(chan string, 16),
		closed:      make(chan struct{}),
	}

	go c.readLoop()
	return c
}

func (c *TCPConn) readLoop() {
	defer close(c.lines)

	scanner := bufio.NewScanner(c.conn)
	for {
		if c.readTimeout > 0 {
			_ = c.conn.SetReadDeadline(time.Now().Add(c.readTimeout))
		}

		if !scanner.Scan() {
			break
		}

		select {
		case c.lines <- scanner.Text():
		case <-c.closed:
			return
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		logrus.WithError(err).WithField("remote", c.RemoteAddr()).Debug("read loop ended")
	}
}

// Lines returns the lines read from the client
func (c *TCPConn) Lines() <-chan string {
	return c.lines
}

// Send writes lines to the client as a single frame
func (c *TCPConn) Send(lines ...string) error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_, err := c.conn.Write(Frame(lines))
	return err
}

// Close closes the connection
func (c *TCPConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})

	return err
}

// RemoteAddr returns the client's address
func (c *TCPConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// ServeTCP accepts connections until ctx is done
// Each connection is handled in its own goroutine and closed when handle returns.
func ServeTCP(ctx context.Context, ln net.Listener, readTimeout time.Duration, handle func(context.Context, Conn)) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			c := NewTCPConn(conn, readTimeout)
			defer c.Close()

			handle(ctx, c)
		}()
	}
}
