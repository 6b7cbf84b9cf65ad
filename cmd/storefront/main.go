package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ponmalar/snackstore/internal/api"
	"github.com/ponmalar/snackstore/internal/api/middleware"
	"github.com/ponmalar/snackstore/internal/catalog"
	"github.com/ponmalar/snackstore/internal/config"
	"github.com/ponmalar/snackstore/internal/storage"
	"github.com/ponmalar/snackstore/pkg/db"
	"github.com/ponmalar/snackstore/pkg/logx"
)

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logx.Init(cfg.Environment)

	snap, err := catalog.Load(context.Background(), cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}

	blobs, cleanup, err := newBlobs(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init storage")
	}
	defer cleanup()

	handler := api.NewRouter(snap, blobs)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Mount("/", handler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().
		Str("addr", cfg.Addr).
		Str("backend", cfg.StoreBackend).
		Int("products", len(snap.All())).
		Msg("starting storefront")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	log.Info().Msg("server stopped")
}

// newBlobs constructs the configured blob store and a cleanup func for
// whatever connection backs it.
func newBlobs(cfg config.Config) (storage.Blobs, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		conn, err := db.NewPostgresConnection(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		pg := storage.NewPostgres(conn)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return pg, func() { conn.Close() }, nil

	case config.BackendRedis:
		client, err := cfg.Redis.New()
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client), func() { client.Close() }, nil

	default:
		return storage.NewMemory(), func() {}, nil
	}
}
