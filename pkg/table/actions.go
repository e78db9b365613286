package table

import (
	"strconv"
)

// outcome is the result of applying a command to the game
type outcome struct {
	// consumed ends the player's turn
	consumed bool

	// removed is set when the player left the hand
	removed bool

	// release hands the player back to its session after feedback is sent
	release bool

	// feedback goes to the acting player
	feedback []string

	// notice goes to everyone else at the table
	notice string
}

type transition func(g *Game, p *Player, cmd Command) outcome

var transitions = map[CommandKind]transition{
	CommandFold:  (*Game).fold,
	CommandCheck: (*Game).check,
	CommandBet:   (*Game).bet,
	CommandExit:  (*Game).exit,
}

// apply runs the transition for cmd
// Rejected commands leave the game untouched.
func (g *Game) apply(p *Player, cmd Command) outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := transitions[cmd.Kind]
	if !ok {
		return outcome{feedback: []string{ErrInvalidInput(cmd.Kind.String()).Error()}}
	}

	res := t(g, p, cmd)
	if res.consumed {
		g.log.WithField("player", p.name).WithField("action", cmd.Kind).Debug("player acted")
	}

	return res
}

func (g *Game) fold(p *Player, _ Command) outcome {
	p.hasActed = true

	// the last player in the hand has nobody to fold to
	if len(g.inHand) <= 1 {
		return outcome{
			consumed: true,
			feedback: []string{"You are the last player in the hand."},
		}
	}

	g.removeFromHand(p)
	return outcome{
		consumed: true,
		removed:  true,
		feedback: []string{"You have folded. Please wait for the next hand."},
		notice:   p.name + " folds",
	}
}

func (g *Game) check(p *Player, _ Command) outcome {
	if p.bet < g.minBet {
		return outcome{feedback: []string{
			"You must either match or beat the minimum bet: " + strconv.FormatInt(g.minBet, 10),
		}}
	}

	p.hasActed = true
	return outcome{consumed: true, notice: p.name + " checks"}
}

func (g *Game) bet(p *Player, cmd Command) outcome {
	amount := cmd.Amount
	switch {
	case amount <= 0:
		return outcome{feedback: []string{"You must bet more than zero."}}
	case amount > p.chips:
		return outcome{feedback: []string{"You don't have enough chips."}}
	case amount < g.minBet:
		return outcome{feedback: []string{"You must bet at least: " + strconv.FormatInt(g.minBet, 10)}}
	}

	// a raise replaces the previous bet, it does not add to it
	if p.alreadyBet {
		p.chips += p.lastBet
	}

	p.chips -= amount
	p.bet = amount
	p.lastBet = amount
	p.alreadyBet = true
	p.hasActed = true

	if amount > g.minBet {
		g.minBet = amount
	}

	g.updatePot()
	return outcome{consumed: true, notice: p.name + " bets " + strconv.FormatInt(amount, 10)}
}

func (g *Game) exit(p *Player, _ Command) outcome {
	p.hasActed = true
	p.exiting = true

	g.removeFromHand(p)
	g.removeSeated(p)
	p.resetRound()
	p.hand = nil
	g.updatePot()

	return outcome{
		consumed: true,
		removed:  true,
		release:  true,
		feedback: []string{"You are folding and exiting the game."},
		notice:   p.name + " has left the game",
	}
}
