package mux

import "net/http"

type playerResponse struct {
	Players []string `json:"players"`
}

func (m *Mux) getPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, playerResponse{Players: m.pitBoss.Players()})
	}
}
