package room

import (
	"context"
	"strings"

	"drawpoker-server/internal/util"
	"drawpoker-server/pkg/table"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Conn is a client connection
type Conn interface {
	table.Conn
	Close() error
	RemoteAddr() string
}

// Client is a single connection to the server
// It walks the player through the menu and waits while the player is seated
type Client struct {
	ID string

	pitBoss    *PitBoss
	conn       Conn
	player     *table.Player
	registered bool
	log        *logrus.Entry
}

// NewClient returns a new client object
func NewClient(pitBoss *PitBoss, conn Conn) *Client {
	id := uuid.New().String()

	return &Client{
		ID:      id,
		pitBoss: pitBoss,
		conn:    conn,
		player:  table.NewPlayer("", pitBoss.settings.StartingChips, conn),
		log: logrus.WithFields(logrus.Fields{
			"client": id,
			"remote": conn.RemoteAddr(),
		}),
	}
}

// Player returns the client's player
func (c *Client) Player() *table.Player {
	return c.player
}

// Serve runs the menu until the client quits, disconnects or ctx is done
func (c *Client) Serve(ctx context.Context) {
	c.log.Info("client connected")
	defer c.close()

	c.send(greeting)
	for {
		c.send(menuLines(c.registered)...)

		line, ok := c.readLine(ctx)
		if !ok {
			return
		}

		switch strings.ToLower(line) {
		case "":
		case "register":
			if !c.register(ctx) {
				return
			}
		case "list":
			c.send(listLines(c.pitBoss.Games(), c.pitBoss.Players())...)
		case "create":
			if !c.play(ctx, c.pitBoss.CreateGame, "You have created a game: ") {
				return
			}
		case "join":
			if !c.play(ctx, c.pitBoss.JoinGame, "") {
				return
			}
		case "unregister":
			c.unregister()
		case "help":
		case "quit":
			c.send("Goodbye.")
			return
		default:
			c.send(table.ErrInvalidInput(line).Error())
		}
	}
}

func (c *Client) close() {
	c.unregister()
	if err := c.conn.Close(); err != nil {
		c.log.WithError(err).Debug("could not close connection")
	}

	c.log.Info("client disconnected")
}

func (c *Client) send(lines ...string) {
	if err := c.conn.Send(lines...); err != nil {
		c.log.WithError(err).Debug("could not send to client")
	}
}

// readLine returns the next line, false once the connection is gone
func (c *Client) readLine(ctx context.Context) (string, bool) {
	select {
	case line, ok := <-c.conn.Lines():
		return strings.TrimSpace(line), ok
	case <-ctx.Done():
		return "", false
	}
}

func (c *Client) register(ctx context.Context) bool {
	if c.registered {
		c.send("You are already registered as: " + c.player.Name())
		return true
	}

	c.send("Please enter your username: ")
	name, ok := c.readLine(ctx)
	if !ok {
		return false
	}

	if name == "" {
		name = util.GetRandomName()
	}

	c.player.SetName(name)
	if err := c.pitBoss.RegisterPlayer(c.player); err != nil {
		c.player.SetName("")
		c.send(userMessage(err, name))
		return true
	}

	c.registered = true
	c.log = c.log.WithField("player", name)
	c.send("You have registered as: "+name, chipsLine(c.player.Chips()))
	return true
}

func (c *Client) unregister() {
	if !c.registered {
		return
	}

	c.pitBoss.UnregisterPlayer(c.player)
	c.registered = false
	c.send("You have been removed from the list of available players.")
}

type seatFunc func(name string, player *table.Player) (*table.Game, error)

// play asks for a game name, seats the player and waits until the game lets go
func (c *Client) play(ctx context.Context, seat seatFunc, confirm string) bool {
	if !c.registered {
		c.send(ErrNotRegistered.Error())
		return true
	}

	c.send("Please enter the name of the game: ")
	name, ok := c.readLine(ctx)
	if !ok {
		return false
	}

	if name == "" {
		c.send(table.ErrInvalidInput(name).Error())
		return true
	}

	if _, err := seat(name, c.player); err != nil {
		c.send(userMessage(err, name))
		return true
	}

	if confirm != "" {
		c.send(confirm + name)
	}

	c.log.WithField("game", name).Info("player is waiting for a seat")

	// the game owns the connection's input until the player is released
	select {
	case <-c.player.Left():
	case <-ctx.Done():
		return false
	}

	c.send(chipsLine(c.player.Chips()))
	return true
}
