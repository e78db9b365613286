package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"drawpoker-server/pkg/db"
	"drawpoker-server/pkg/history"
	"github.com/sirupsen/logrus"
)

var command = flag.String("c", "history", "specifies the command (history)")
var game = flag.String("game", "", "the game to show history for")
var rows = flag.Int("rows", 10, "the number of rounds to show")

func main() {
	flag.Parse()

	switch *command {
	case "history":
		name := *game
		if name == "" {
			var err error
			if name, err = getInput("Game"); err != nil {
				logrus.WithError(err).Fatal("could not get answer")
			}
		}

		if name == "" {
			os.Exit(1)
		}

		rounds, err := history.NewSQLRecorder(db.Instance()).Recent(context.Background(), name, *rows)
		if err != nil {
			logrus.WithError(err).Fatal("could not load history")
		}

		if len(rounds) == 0 {
			fmt.Printf("No rounds found for %s\n", name)
			return
		}

		for _, round := range rounds {
			printRound(round)
		}
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func printRound(round *history.Round) {
	fmt.Printf("Round %d (%s), pot %d\n", round.Number, round.Ended.Format("2006-01-02 15:04:05"), round.Pot)
	for _, seat := range round.Winners {
		fmt.Printf("  won  %6d  %-20s %s (%s)\n", seat.Payout, seat.Name, seat.Hand, seat.Category)
	}

	for _, seat := range round.Losers {
		fmt.Printf("  lost        %-20s %s (%s)\n", seat.Name, seat.Hand, seat.Category)
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
