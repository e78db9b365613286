package table

// PlayerSnapshot is a point-in-time view of a seated player
type PlayerSnapshot struct {
	Name   string `json:"name"`
	Chips  int64  `json:"chips"`
	Bet    int64  `json:"bet"`
	InHand bool   `json:"inHand"`
}

// Snapshot is a point-in-time view of a game
type Snapshot struct {
	Name        string           `json:"name"`
	State       string           `json:"state"`
	Round       int              `json:"round"`
	Players     []PlayerSnapshot `json:"players"`
	Pending     int              `json:"pending"`
	Pot         int64            `json:"pot"`
	MinBet      int64            `json:"minBet"`
	DealerIndex int              `json:"dealerIndex"`
}

// Snapshot returns the current state of the game
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	players := make([]PlayerSnapshot, 0, len(g.seated))
	for _, p := range g.seated {
		players = append(players, PlayerSnapshot{
			Name:   p.name,
			Chips:  p.chips,
			Bet:    p.bet,
			InHand: indexOf(g.inHand, p) >= 0,
		})
	}

	return Snapshot{
		Name:        g.name,
		State:       g.state.String(),
		Round:       g.round,
		Players:     players,
		Pending:     len(g.pending),
		Pot:         g.pot,
		MinBet:      g.minBet,
		DealerIndex: g.dealerIndex,
	}
}
