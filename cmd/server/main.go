package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"drawpoker-server/internal/config"
	"drawpoker-server/internal/mux"
	"drawpoker-server/pkg/db"
	"drawpoker-server/pkg/history"
	"drawpoker-server/pkg/room"
	"drawpoker-server/pkg/table"
	"drawpoker-server/pkg/wire"
	"github.com/coder/quartz"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

func main() {
	setupLogger()
	cfg := config.Instance()

	recorder, historyReader := setupHistory()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	pitBoss := room.NewPitBoss(room.Settings{
		StartingChips: cfg.StartingChips,
		Game: table.Options{
			Clock:        quartz.NewReal(),
			TurnTimeout:  cfg.TurnTimeoutDuration(),
			MaxIdleTurns: cfg.MaxIdleTurns,
			Recorder:     recorder,
		},
	})
	pitBoss.StartShift(ctx)

	g.Go(func() error {
		ln, err := net.Listen("tcp", cfg.ListenAddr)
		if err != nil {
			return err
		}

		logrus.WithField("addr", cfg.ListenAddr).Info("listening for players")
		return wire.ServeTCP(ctx, ln, cfg.ReadTimeoutDuration(), func(ctx context.Context, conn wire.Conn) {
			room.NewClient(pitBoss, conn).Serve(ctx)
		})
	})

	g.Go(func() error {
		c := cors.New(cors.Options{
			AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
			AllowedMethods: []string{http.MethodGet},
		})

		srv := &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      loggingHandler(c.Handler(mux.NewMux(ctx, Version, pitBoss, historyReader))),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		logrus.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}

	pitBoss.Wait()
	logrus.Info("server stopped")
}

// setupHistory records rounds to the log, and to the database if one is configured
func setupHistory() (history.Recorder, mux.HistoryReader) {
	if !db.Enabled() {
		return history.LogRecorder{}, nil
	}

	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	sqlRecorder := history.NewSQLRecorder(db.Instance())
	return history.Multi{history.LogRecorder{}, sqlRecorder}, sqlRecorder
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
