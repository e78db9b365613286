package table

import (
	"fmt"
	"strconv"
)

// commandRequest lists the turn commands
func commandRequest() []string {
	return []string{
		`Type "exit" to EXIT GAME`,
		`Type "fold" to FOLD`,
		`Type "check" to CHECK`,
		`Type "bet <amount>" to BET`,
		"",
	}
}

func betRequest(minBet int64) []string {
	return []string{
		"Minimum Bet: " + strconv.FormatInt(minBet, 10),
		"Enter your bet amount: ",
	}
}

func handLines(p *Player) []string {
	if p.hand == nil {
		return nil
	}

	return []string{
		"Your Hand",
		fmt.Sprintf("%s (%s)", p.hand, p.hand.Describe()),
		"",
	}
}

func chipStackLines(players []*Player) []string {
	lines := []string{"Player Chip Stacks"}
	for _, p := range players {
		lines = append(lines,
			"\t"+p.name,
			"\t\tChips: "+strconv.FormatInt(p.chips, 10),
			"\t\tBet: "+strconv.FormatInt(p.bet, 10),
		)
	}

	return append(lines, "")
}

func potLines(pot, minBet int64) []string {
	return []string{
		"Total Pot: " + strconv.FormatInt(pot, 10),
		"Min Bet: " + strconv.FormatInt(minBet, 10),
		"",
	}
}

func handSummaryLine(p *Player) string {
	if p.hand == nil {
		return fmt.Sprintf("\t%q", p.name)
	}

	return fmt.Sprintf("\t%q: %s (%s)", p.name, p.hand, p.hand.Describe())
}
