package main

import (
	"time"

	"drawpoker-server/pkg/db"
	"github.com/sirupsen/logrus"
)

func main() {
	if !db.Enabled() {
		logrus.Fatal("no database configured, set DPS_PG_DSN")
	}

	waitForDB()
	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB() {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			err := db.LoadInstance()
			if err == nil {
				return
			}

			logrus.WithError(err).Debug("database is not ready")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
