package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"scum-server/internal/config"
	"scum-server/internal/mux"
	"scum-server/pkg/db"
	"scum-server/pkg/leaderboard"
	"scum-server/pkg/session"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	store := newLeaderboardStore(cfg)
	manager := session.NewManager(store, session.Options{
		AISeats: cfg.Game.AISeats,
		Rounds:  cfg.Game.Rounds,
		TTL:     time.Duration(cfg.Game.SessionTTLMinutes) * time.Minute,
	})
	manager.StartSweeper()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, manager, store))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// newLeaderboardStore builds the configured store. The leaderboard is a soft
// dependency, so an unreachable backend degrades to the in-memory store
// instead of preventing startup.
func newLeaderboardStore(cfg config.Config) leaderboard.Store {
	switch cfg.Leaderboard.Driver {
	case "postgres":
		store, err := func() (s leaderboard.Store, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%v", r)
				}
			}()

			db.Migrate()
			return leaderboard.NewPostgres(db.Instance()), nil
		}()
		if err != nil {
			logrus.WithError(err).Error("could not connect to postgres, using in-memory leaderboard")
			return leaderboard.NewMemory()
		}

		return store
	case "redis":
		addr := cfg.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}

		return leaderboard.NewRedis(redis.NewClient(&redis.Options{Addr: addr}))
	default:
		logrus.Info("using in-memory leaderboard")
		return leaderboard.NewMemory()
	}
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

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
