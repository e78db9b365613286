package mux

import (
	"context"
	"net/http"

	"drawpoker-server/pkg/history"
	"drawpoker-server/pkg/room"
	gmux "github.com/gorilla/mux"
)

// HistoryReader returns recently finished rounds
type HistoryReader interface {
	Recent(ctx context.Context, game string, limit int) ([]*history.Round, error)
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	ctx     context.Context
	version string
	pitBoss *room.PitBoss

	// history is nil when no database is configured
	history HistoryReader
}

// NewMux returns a new HTTP mux
// Websocket sessions are served until ctx is done
func NewMux(ctx context.Context, version string, pitBoss *room.PitBoss, history HistoryReader) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		ctx:     ctx,
		version: version,
		pitBoss: pitBoss,
		history: history,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/player").Handler(this.getPlayer())
	r.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
	r.Methods(http.MethodGet).Path("/game/{name}").Handler(this.getGameName())
	r.Methods(http.MethodGet).Path("/game/{name}/history").Handler(this.getGameNameHistory())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
