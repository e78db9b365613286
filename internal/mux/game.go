package mux

import (
	"errors"
	"net/http"

	"drawpoker-server/pkg/history"
	"drawpoker-server/pkg/table"
	gmux "github.com/gorilla/mux"
)

var errHistoryDisabled = errors.New("round history is not enabled")

type gameListResponse struct {
	Games []table.Snapshot `json:"games"`
}

type gameResponse struct {
	table.Snapshot
	LastRoundSummary []string `json:"lastRoundSummary"`
}

type historyResponse struct {
	Rounds []*history.Round `json:"rounds"`
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gameListResponse{Games: m.pitBoss.Games()})
	}
}

func (m *Mux) getGameName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, found := m.pitBoss.Game(gmux.Vars(r)["name"])
		if !found {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, gameResponse{
			Snapshot:         game.Snapshot(),
			LastRoundSummary: game.LastRoundSummary(),
		})
	}
}

func (m *Mux) getGameNameHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.history == nil {
			writeJSONError(w, http.StatusNotFound, errHistoryDisabled)
			return
		}

		rows, err := parseRows(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rounds, err := m.history.Recent(r.Context(), gmux.Vars(r)["name"], rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, historyResponse{Rounds: rounds})
	}
}
