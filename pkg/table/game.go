package table

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/history"
	"drawpoker-server/pkg/poker"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// MaxPlayers is the most players a game can seat, counting queued joins
const MaxPlayers = 10

// State is where the game is in its round cycle
type State int

// game states
const (
	StateIdle State = iota
	StateDealing
	StateBetting
	StateShowdown
	StatePayout
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDealing:
		return "dealing"
	case StateBetting:
		return "betting"
	case StateShowdown:
		return "showdown"
	case StatePayout:
		return "payout"
	default:
		return "unknown"
	}
}

// Options configures a game
type Options struct {
	// Clock drives turn timeouts
	Clock quartz.Clock

	// TurnTimeout is how long a player has to answer a prompt, 0 waits forever
	TurnTimeout time.Duration

	// MaxIdleTurns is how many timeouts in a row remove a player from the game, 0 never removes
	MaxIdleTurns int

	// Recorder receives every finished round
	Recorder history.Recorder

	// NewDeck returns the deck for a round
	NewDeck func() *deck.Deck
}

// Game is a five-card game played by up to MaxPlayers players
//
// Only the goroutine in Run mutates the round. Other goroutines talk to the
// game through RequestJoin and the read-only accessors, all guarded by mu.
type Game struct {
	name string
	opts Options
	log  *logrus.Entry

	mu               sync.Mutex
	state            State
	seated           []*Player
	inHand           []*Player
	pending          []*Player
	pot              int64
	minBet           int64
	dealerIndex      int
	turn             int
	round            int
	roundStarted     time.Time
	started          bool
	closed           bool
	lastRoundSummary []string

	wake chan struct{}
}

// NewGame returns a new idle game
func NewGame(name string, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	if opts.Recorder == nil {
		opts.Recorder = history.LogRecorder{}
	}

	if opts.NewDeck == nil {
		opts.NewDeck = deck.New
	}

	return &Game{
		name: name,
		opts: opts,
		log:  logrus.WithField("game", name),
		wake: make(chan struct{}, 1),
	}
}

// Name returns the name of the game
func (g *Game) Name() string {
	return g.name
}

// State returns the current state
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// CanSeatPlayer returns true if another player could join
func (g *Game) CanSeatPlayer() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return !g.closed && len(g.seated)+len(g.pending) < MaxPlayers
}

// SeatedPlayerCount returns the number of seated players
func (g *Game) SeatedPlayerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.seated)
}

// LastRoundSummary returns the summary lines of the last finished round
func (g *Game) LastRoundSummary() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := make([]string, len(g.lastRoundSummary))
	copy(s, g.lastRoundSummary)
	return s
}

// RequestJoin queues the player to be seated at the next deal
// The player is borrowed until its Left() channel closes.
func (g *Game) RequestJoin(p *Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrGameClosed
	}

	if len(g.seated)+len(g.pending) >= MaxPlayers {
		return ErrGameFull
	}

	if indexOf(g.seated, p) >= 0 || indexOf(g.pending, p) >= 0 {
		return ErrAlreadySeated
	}

	p.borrow()
	g.pending = append(g.pending, p)
	g.log.WithField("player", p.name).Debug("player queued")

	// an idle game is waiting for this
	select {
	case g.wake <- struct{}{}:
	default:
	}

	return nil
}

// Run plays rounds until every player has left or ctx is done
// Every borrowed player is released before Run returns.
func (g *Game) Run(ctx context.Context) error {
	g.log.Info("game started")
	defer g.shutdown()

	for {
		ok, err := g.waitForPlayers(ctx)
		if err != nil || !ok {
			return err
		}

		if err := g.deal(); err != nil {
			// 10 players never need more than 50 cards
			g.log.WithError(err).Error("could not deal")
			g.broadcast(nil, "The game has ended unexpectedly.")
			return err
		}

		g.bettingRound(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}

		g.showdown(ctx)
		g.reset()
	}
}

// waitForPlayers seats the queued players
// It blocks while the game has never seated anyone, and returns false once
// the last player has left.
func (g *Game) waitForPlayers(ctx context.Context) (bool, error) {
	for {
		g.mu.Lock()
		if len(g.seated)+len(g.pending) > 0 {
			g.state = StateDealing
			g.started = true
			joined := g.absorbPendingJoins()
			g.mu.Unlock()

			for _, p := range joined {
				p.Send("Welcome to game: " + g.name)
			}

			return true, nil
		}

		g.state = StateIdle
		if g.started {
			g.closed = true
			g.mu.Unlock()
			return false, nil
		}
		g.mu.Unlock()

		select {
		case <-g.wake:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

// absorbPendingJoins must be called with mu held
func (g *Game) absorbPendingJoins() []*Player {
	joined := g.pending
	for _, p := range joined {
		p.resetRound()
		p.hand = nil
		g.seated = append(g.seated, p)
		g.log.WithField("player", p.name).Info("player seated")
	}

	g.pending = nil
	return joined
}

func (g *Game) deal() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	d := g.opts.NewDeck()
	if need := len(g.seated) * poker.HandSize; !d.CanDraw(need) {
		return fmt.Errorf("need %d cards, deck has %d", need, d.CardsLeft())
	}

	for _, p := range g.seated {
		cards, err := d.DrawN(poker.HandSize)
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", p.name, err)
		}

		hand, err := poker.NewHand(cards)
		if err != nil {
			return err
		}

		hand.Sort()
		p.hand = hand
	}

	g.inHand = append([]*Player(nil), g.seated...)
	g.round++
	g.roundStarted = g.opts.Clock.Now()
	g.state = StateBetting
	return nil
}

// bettingRound asks the players in hand to act, in turn order from the dealer
// index, until the round is complete
func (g *Game) bettingRound(ctx context.Context) {
	g.mu.Lock()
	if n := len(g.inHand); n > 0 {
		g.turn = g.dealerIndex % n
	}
	g.mu.Unlock()

	for {
		g.mu.Lock()
		if g.roundComplete() {
			g.mu.Unlock()
			return
		}
		p := g.inHand[g.turn]
		g.mu.Unlock()

		removed := g.takeTurn(ctx, p)
		if ctx.Err() != nil {
			return
		}

		g.mu.Lock()
		// a removed player's successor has slid into its slot
		if !removed {
			g.turn++
		}

		n := len(g.inHand)
		if n > 0 {
			g.turn %= n
		}
		g.mu.Unlock()

		if removed && n == 1 {
			return
		}
	}
}

// roundComplete must be called with mu held
func (g *Game) roundComplete() bool {
	for _, p := range g.inHand {
		if !p.hasActed || p.bet != g.minBet {
			return false
		}
	}

	return true
}

// takeTurn prompts p until it makes a legal move
// Returns true if p was removed from the hand.
// The whole turn shares one deadline, so invalid input does not extend it.
func (g *Game) takeTurn(ctx context.Context, p *Player) bool {
	deadline, stop := g.turnDeadline()
	defer func() {
		stop()
	}()

	var feedback []string
	for {
		cmd, err := g.readCommand(ctx, p, deadline, append(feedback, g.turnStatus(p)...))
		feedback = nil

		var invalid ErrInvalidInput
		switch {
		case err == nil:
			p.idleTurns = 0
		case ctx.Err() != nil:
			return false
		case errors.As(err, &invalid):
			feedback = []string{invalid.Error()}
			continue
		case errors.Is(err, ErrDisconnected):
			g.log.WithField("player", p.name).Info("player disconnected")
			cmd = Command{Kind: CommandExit}
		case errors.Is(err, ErrTurnTimeout):
			cmd, feedback = g.timeoutCommand(p)
			stop()
			deadline, stop = g.turnDeadline()
		default:
			g.log.WithError(err).WithField("player", p.name).Error("could not read command")
			cmd = Command{Kind: CommandExit}
		}

		res := g.apply(p, cmd)
		if !res.consumed {
			feedback = res.feedback
			continue
		}

		if lines := append(feedback, res.feedback...); len(lines) > 0 {
			p.Send(lines...)
		}

		if res.release {
			p.release()
		}

		if res.notice != "" {
			g.broadcast(p, res.notice)
		}

		return res.removed
	}
}

func (g *Game) timeoutCommand(p *Player) (Command, []string) {
	p.idleTurns++
	if g.opts.MaxIdleTurns > 0 && p.idleTurns >= g.opts.MaxIdleTurns {
		return Command{Kind: CommandExit}, []string{"You were idle for too long."}
	}

	return Command{Kind: CommandFold}, []string{"You took too long to act."}
}

func (g *Game) readCommand(ctx context.Context, p *Player, deadline <-chan struct{}, prompt []string) (Command, error) {
	line, err := g.prompt(ctx, p, deadline, prompt)
	if err != nil {
		return Command{}, err
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		return Command{}, err
	}

	if cmd.Kind == CommandBet && !cmd.HasAmount {
		g.mu.Lock()
		minBet := g.minBet
		g.mu.Unlock()

		line, err = g.prompt(ctx, p, deadline, betRequest(minBet))
		if err != nil {
			return Command{}, err
		}

		if cmd.Amount, err = ParseAmount(line); err != nil {
			return Command{}, err
		}

		cmd.HasAmount = true
	}

	return cmd, nil
}

// turnDeadline arms the turn timer. The returned channel is closed when it
// fires and stays open forever when TurnTimeout is zero.
func (g *Game) turnDeadline() (<-chan struct{}, func()) {
	timedOut := make(chan struct{})
	if g.opts.TurnTimeout <= 0 {
		return timedOut, func() {}
	}

	timer := g.opts.Clock.AfterFunc(g.opts.TurnTimeout, func() {
		close(timedOut)
	}, "turn")

	return timedOut, func() {
		timer.Stop()
	}
}

// prompt sends lines to p and waits for a non-blank answer
func (g *Game) prompt(ctx context.Context, p *Player, deadline <-chan struct{}, lines []string) (string, error) {
	p.Send(lines...)

	for {
		select {
		case line, ok := <-p.conn.Lines():
			if !ok {
				return "", ErrDisconnected
			}

			if line = strings.TrimSpace(line); line != "" {
				return line, nil
			}
		case <-deadline:
			return "", ErrTurnTimeout
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

func (g *Game) turnStatus(p *Player) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	lines := chipStackLines(g.seated)
	lines = append(lines, handLines(p)...)
	lines = append(lines, potLines(g.pot, g.minBet)...)
	return append(lines, commandRequest()...)
}

// broadcast sends a line to every seated player but skip
func (g *Game) broadcast(skip *Player, line string) {
	g.mu.Lock()
	recipients := append([]*Player(nil), g.seated...)
	g.mu.Unlock()

	for _, p := range recipients {
		if p != skip {
			p.Send(line)
		}
	}
}

// updatePot must be called with mu held
// Only seated players count. An exiting player's bet leaves with it.
func (g *Game) updatePot() {
	var pot int64
	for _, p := range g.seated {
		pot += p.bet
	}

	g.pot = pot
}

func (g *Game) removeFromHand(p *Player) {
	if i := indexOf(g.inHand, p); i >= 0 {
		g.inHand = append(g.inHand[:i], g.inHand[i+1:]...)
	}
}

func (g *Game) removeSeated(p *Player) {
	if i := indexOf(g.seated, p); i >= 0 {
		g.seated = append(g.seated[:i], g.seated[i+1:]...)
	}
}

func (g *Game) showdown(ctx context.Context) {
	g.mu.Lock()
	g.state = StateShowdown
	if len(g.inHand) == 0 {
		g.mu.Unlock()
		return
	}

	hands := make([]*poker.Hand, len(g.inHand))
	for i, p := range g.inHand {
		hands[i] = p.hand
	}

	best := poker.Best(hands)
	winners := make([]*Player, 0, len(best))
	for _, i := range best {
		winners = append(winners, g.inHand[i])
	}

	losers := make([]*Player, 0, len(g.inHand)-len(winners))
	for _, p := range g.inHand {
		if indexOf(winners, p) < 0 {
			losers = append(losers, p)
		}
	}

	g.state = StatePayout
	pot := g.pot
	share, payouts := g.payout(winners)
	summary := roundSummary(winners, losers, share)
	g.lastRoundSummary = summary
	round := g.historyRound(pot, share, winners, losers, payouts)
	recipients := append([]*Player(nil), g.seated...)
	g.mu.Unlock()

	for _, p := range recipients {
		p.Send(summary...)
	}

	if err := g.opts.Recorder.Record(ctx, round); err != nil {
		g.log.WithError(err).Error("could not record round")
	}
}

// payout must be called with mu held
// Each winner gets the floor of pot/winners. The odd chips go one at a time
// to the winners in turn order, starting from the dealer index.
func (g *Game) payout(winners []*Player) (int64, map[*Player]int64) {
	n := int64(len(winners))
	share := g.pot / n
	remainder := g.pot % n

	ordered := append([]*Player(nil), winners...)
	seats := len(g.seated)
	distance := func(p *Player) int {
		return (indexOf(g.seated, p) - g.dealerIndex + seats) % seats
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return distance(ordered[i]) < distance(ordered[j])
	})

	payouts := make(map[*Player]int64, len(ordered))
	for i, p := range ordered {
		amount := share
		if int64(i) < remainder {
			amount++
		}

		p.chips += amount
		payouts[p] = amount
	}

	return share, payouts
}

func (g *Game) historyRound(pot, share int64, winners, losers []*Player, payouts map[*Player]int64) *history.Round {
	seat := func(p *Player) history.Seat {
		return history.Seat{
			Name:     p.name,
			Hand:     p.hand.String(),
			Category: p.hand.Category().String(),
			Payout:   payouts[p],
		}
	}

	round := &history.Round{
		Game:    g.name,
		Number:  g.round,
		Pot:     pot,
		Share:   share,
		Started: g.roundStarted,
		Ended:   g.opts.Clock.Now(),
	}

	for _, p := range winners {
		round.Winners = append(round.Winners, seat(p))
	}

	for _, p := range losers {
		round.Losers = append(round.Losers, seat(p))
	}

	return round
}

func roundSummary(winners, losers []*Player, share int64) []string {
	lines := []string{"Winning hands"}
	for _, p := range winners {
		lines = append(lines, handSummaryLine(p))
	}

	lines = append(lines, "Losing hands")
	for _, p := range losers {
		lines = append(lines, handSummaryLine(p))
	}

	return append(lines, "Winners each won: "+strconv.FormatInt(share, 10), "")
}

// reset clears the round and moves the dealer index along
func (g *Game) reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.seated {
		p.resetRound()
	}

	g.inHand = nil
	g.pot = 0
	g.minBet = 0

	if n := len(g.seated); n > 0 {
		g.dealerIndex = (g.dealerIndex + 1) % n
	} else {
		g.dealerIndex = 0
	}

	g.state = StateDealing
}

// shutdown closes the game and releases every borrowed player
func (g *Game) shutdown() {
	g.mu.Lock()
	g.closed = true
	g.state = StateIdle
	players := append(append([]*Player(nil), g.seated...), g.pending...)
	g.seated = nil
	g.inHand = nil
	g.pending = nil
	g.mu.Unlock()

	for _, p := range players {
		p.release()
	}

	g.log.Info("game ended")
}

func indexOf(players []*Player, p *Player) int {
	for i, player := range players {
		if player == p {
			return i
		}
	}

	return -1
}
