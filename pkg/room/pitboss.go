package room

import (
	"context"
	"sort"
	"sync"

	"drawpoker-server/pkg/table"
	"github.com/sirupsen/logrus"
)

// Settings configures the players and games a pit boss hands out
type Settings struct {
	// StartingChips is the chip stack of every new connection
	StartingChips int64

	// Game is passed to every game that is created
	Game table.Options
}

// PitBoss owns the registered players and the running games
// All registry changes happen in its run loop.
type PitBoss struct {
	settings Settings
	players  map[string]*table.Player
	games    map[string]*table.Game

	execInRunLoop chan func()
	done          chan struct{}
	ctx           context.Context
	wg            sync.WaitGroup
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(settings Settings) *PitBoss {
	return &PitBoss{
		settings:      settings,
		players:       make(map[string]*table.Player),
		games:         make(map[string]*table.Game),
		execInRunLoop: make(chan func()),
		done:          make(chan struct{}),
	}
}

// StartShift starts the PitBoss run loop
// Games are stopped when ctx is done.
func (p *PitBoss) StartShift(ctx context.Context) {
	p.ctx = ctx
	go p.runLoop(ctx)
}

// Wait blocks until the run loop and every game have stopped
func (p *PitBoss) Wait() {
	<-p.done
	p.wg.Wait()
}

func (p *PitBoss) runLoop(ctx context.Context) {
	logrus.Debug("pit boss run loop started")
	defer close(p.done)

	for {
		select {
		case fn := <-p.execInRunLoop:
			fn()
		case <-ctx.Done():
			logrus.Debug("pit boss run loop terminated")
			return
		}
	}
}

// exec runs fn in the run loop and waits for it to finish
func (p *PitBoss) exec(fn func()) error {
	finished := make(chan struct{})
	select {
	case p.execInRunLoop <- func() {
		fn()
		close(finished)
	}:
	case <-p.done:
		return ErrShiftEnded
	}

	<-finished
	return nil
}

// RegisterPlayer makes the player's name unavailable to anyone else
func (p *PitBoss) RegisterPlayer(player *table.Player) error {
	var err error
	if execErr := p.exec(func() {
		if _, found := p.players[player.Name()]; found {
			err = ErrNameTaken
			return
		}

		p.players[player.Name()] = player
	}); execErr != nil {
		return execErr
	}

	if err == nil {
		logrus.WithField("player", player.Name()).Info("player registered")
	}

	return err
}

// UnregisterPlayer frees the player's name
func (p *PitBoss) UnregisterPlayer(player *table.Player) {
	_ = p.exec(func() {
		if p.players[player.Name()] == player {
			delete(p.players, player.Name())
			logrus.WithField("player", player.Name()).Info("player unregistered")
		}
	})
}

// Players returns the registered names, sorted
func (p *PitBoss) Players() []string {
	var names []string
	_ = p.exec(func() {
		names = make([]string, 0, len(p.players))
		for name := range p.players {
			names = append(names, name)
		}
	})

	sort.Strings(names)
	return names
}

// CreateGame creates and starts a new game with creator queued as its first player
// The game is removed from the registry when its last player leaves.
func (p *PitBoss) CreateGame(name string, creator *table.Player) (*table.Game, error) {
	var game *table.Game
	var err error
	if execErr := p.exec(func() {
		if _, found := p.games[name]; found {
			err = ErrGameExists
			return
		}

		game = table.NewGame(name, p.settings.Game)
		if err = game.RequestJoin(creator); err != nil {
			return
		}

		p.games[name] = game

		p.wg.Add(1)
		go p.runGame(game)
	}); execErr != nil {
		return nil, execErr
	}

	if err != nil {
		return nil, err
	}

	logrus.WithField("game", name).WithField("player", creator.Name()).Info("game created")
	return game, nil
}

func (p *PitBoss) runGame(game *table.Game) {
	defer p.wg.Done()

	log := logrus.WithField("game", game.Name())
	if err := game.Run(p.ctx); err != nil && p.ctx.Err() == nil {
		log.WithError(err).Error("game ended with error")
	}

	_ = p.exec(func() {
		if p.games[game.Name()] == game {
			delete(p.games, game.Name())
			log.Debug("game removed")
		}
	})
}

// JoinGame queues the player at the named game
func (p *PitBoss) JoinGame(name string, player *table.Player) (*table.Game, error) {
	var game *table.Game
	var err error
	if execErr := p.exec(func() {
		var found bool
		if game, found = p.games[name]; !found {
			err = ErrNoGame
			return
		}

		err = game.RequestJoin(player)
	}); execErr != nil {
		return nil, execErr
	}

	if err != nil {
		return nil, err
	}

	return game, nil
}

// Game returns the named game
func (p *PitBoss) Game(name string) (*table.Game, bool) {
	var game *table.Game
	var found bool
	_ = p.exec(func() {
		game, found = p.games[name]
	})

	return game, found
}

// Games returns a snapshot of every game with at least one player, sorted by name
func (p *PitBoss) Games() []table.Snapshot {
	var games []*table.Game
	_ = p.exec(func() {
		games = make([]*table.Game, 0, len(p.games))
		for _, game := range p.games {
			games = append(games, game)
		}
	})

	snapshots := make([]table.Snapshot, 0, len(games))
	for _, game := range games {
		snap := game.Snapshot()
		if len(snap.Players)+snap.Pending == 0 {
			continue
		}

		snapshots = append(snapshots, snap)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Name < snapshots[j].Name
	})

	return snapshots
}
