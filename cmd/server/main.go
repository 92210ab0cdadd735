package main

import (
	"coinche-server/internal/config"
	"coinche-server/internal/mux"
	"coinche-server/internal/rng"
	"coinche-server/pkg/playable/coinche"
	"coinche-server/pkg/room"
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the configuration)")

func main() {
	flag.Parse()

	cfg := config.Instance()
	setupLogger(cfg)

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	logger := logrus.WithField("component", "match")
	if cfg.Match.Seed != 0 {
		logger.WithField("seed", cfg.Match.Seed).Warn("using a seeded deck")
	}

	dealer := room.NewDealer(logger, coinche.NewMatch(logger, rng.New(cfg.Match.Seed)))
	dealer.StartShift()
	defer dealer.EndShift()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	// no WriteTimeout: it would cut the websocket connections
	srv := &http.Server{
		Addr:        listenAddr,
		Handler:     loggingHandler(cfg, c.Handler(mux.NewMux(Version, dealer, cfg))),
		ReadTimeout: readTimeout,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).WithField("version", Version).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("could not listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("could not shut down cleanly")
	}
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
