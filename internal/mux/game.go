package mux

import (
	"errors"
	"net/http"

	"scum-server/pkg/scum"
	"scum-server/pkg/session"
)

type postGameStartPayload struct {
	PlayerName string `json:"playerName"`
}

func (m *Mux) postGameStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGameStartPayload

		// older clients start a game without a body
		if r.ContentLength > 0 {
			if !decodeRequest(w, r, &payload) {
				return
			}
		}

		state, err := m.manager.Start(r.Context(), payload.PlayerName)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, state)
	}
}

func (m *Mux) postGameAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var action session.Action
		if !decodeRequest(w, r, &action) {
			return
		}

		state, err := m.manager.Apply(r.Context(), action.GameID, action)
		if err != nil {
			var ve scum.ValidationError
			switch {
			case errors.As(err, &ve):
				writeJSONError(w, http.StatusBadRequest, err)
			case errors.Is(err, session.ErrGameNotFound):
				writeJSONError(w, http.StatusNotFound, err)
			default:
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}
