package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"scum-server/pkg/leaderboard"
	"scum-server/pkg/session"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version     string
	manager     *session.Manager
	leaderboard leaderboard.Store
}

// NewMux returns a new HTTP mux
func NewMux(version string, manager *session.Manager, store leaderboard.Store) *Mux {
	this := &Mux{
		Router:      gmux.NewRouter(),
		version:     version,
		manager:     manager,
		leaderboard: store,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game/start").Handler(this.postGameStart())
	r.Methods(http.MethodPost).Path("/game/action").Handler(this.postGameAction())
	r.Methods(http.MethodGet).Path("/leaderboard").Handler(this.getLeaderboard())

	return this
}
