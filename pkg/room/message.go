package room

import (
	"fmt"
	"strconv"
	"strings"

	"drawpoker-server/pkg/table"
)

const greeting = "You have connected to the server...."

func menuLines(registered bool) []string {
	lines := []string{"", "Main Menu"}
	if !registered {
		lines = append(lines, `Type "register" to REGISTER`)
	}

	lines = append(lines, `Type "list" to LIST GAMES AND PLAYERS`)
	if registered {
		lines = append(lines,
			`Type "create" to CREATE A GAME`,
			`Type "join" to JOIN A GAME`,
			`Type "unregister" to UNREGISTER`,
		)
	}

	return append(lines,
		`Type "help" to SHOW THIS MENU`,
		`Type "quit" to QUIT`,
		"",
	)
}

func listLines(games []table.Snapshot, players []string) []string {
	lines := []string{"Games"}
	if len(games) == 0 {
		lines = append(lines, "\tThere are no games.")
	}

	for _, game := range games {
		names := make([]string, 0, len(game.Players))
		for _, p := range game.Players {
			names = append(names, p.Name)
		}

		lines = append(lines, fmt.Sprintf("\t%s (%d/%d): %s", game.Name, len(game.Players)+game.Pending, table.MaxPlayers, strings.Join(names, ", ")))
	}

	lines = append(lines, "", "Players")
	if len(players) == 0 {
		lines = append(lines, "\tThere are no registered players.")
	}

	for _, name := range players {
		lines = append(lines, "\t"+name)
	}

	return append(lines, "")
}

func chipsLine(chips int64) string {
	return "You have " + strconv.FormatInt(chips, 10) + " chips."
}
