package mux

import (
	"net/http"

	"drawpoker-server/pkg/room"
	"drawpoker-server/pkg/wire"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		client := room.NewClient(m.pitBoss, wire.NewWebSocketConn(conn))
		client.Serve(m.ctx)
	}
}
