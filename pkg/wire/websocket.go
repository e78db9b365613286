package wire

import (
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// WebSocketConn is a client connected over a websocket
// Every text message from the client may carry several lines, every frame
// sent to the client is one text message.
type WebSocketConn struct {
	conn  *websocket.Conn
	lines chan string
	send  chan []byte

	closeOnce sync.Once
	closed    chan struct{}
}

// NewWebSocketConn starts the read and write loops for conn
func NewWebSocketConn(conn *websocket.Conn) *WebSocketConn {
	c := &WebSocketConn{
		conn:   conn,
		lines:  make(chan string, 16),
		send:   make(chan []byte, 256),
		closed: make(chan struct{}),
	}

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go c.writeLoop()
	go c.readLoop()
	return c
}

func (c *WebSocketConn) readLoop() {
	defer close(c.lines)
	defer c.Close()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithField("remote", c.RemoteAddr()).Error("could not read message")
			}

			return
		}

		for _, line := range strings.Split(strings.TrimRight(string(msg), "\r\n"), "\n") {
			select {
			case c.lines <- strings.TrimRight(line, "\r"):
			case <-c.closed:
				return
			}
		}
	}
}

func (c *WebSocketConn) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg := <-c.send:
			logrus.WithField("message", string(msg)).WithField("remote", c.RemoteAddr()).Trace("sending message to client")

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logrus.WithError(err).WithField("remote", c.RemoteAddr()).Error("could not write message")
				return
			}
		case <-c.closed:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// Lines returns the lines read from the client
func (c *WebSocketConn) Lines() <-chan string {
	return c.lines
}

// Send queues lines for the client as a single frame
func (c *WebSocketConn) Send(lines ...string) error {
	select {
	case c.send <- Frame(lines):
		return nil
	case <-c.closed:
		return websocket.ErrCloseSent
	}
}

// Close closes the connection
func (c *WebSocketConn) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
	})

	return nil
}

// RemoteAddr returns the client's address
func (c *WebSocketConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
