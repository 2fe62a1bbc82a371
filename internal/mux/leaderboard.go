package mux

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"scum-server/pkg/leaderboard"
)

// getLeaderboard returns the win standings. A store outage degrades to an
// empty, explicitly stale list instead of an error so the client stays usable.
func (m *Mux) getLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := m.leaderboard.List(r.Context())
		if err != nil {
			logrus.WithError(err).Error("could not list leaderboard")
			w.Header().Set("X-Leaderboard-Stale", "true")
			writeJSON(w, http.StatusOK, []leaderboard.Entry{})
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
