//
// HTTP Methods
// ============
// A small REST web service over two in-memory collections, users and posts,
// with an embedded front end on top of it.
//
// Passing the -routes flag prints the generated docs for the router
// definition instead of serving: `go run . -routes`
//
// Boot the server:
// ----------------
// $ go run .
//
// Client requests:
// ----------------
// $ curl http://localhost:3000/health
// {"status":"OK","message":"Server is running","timestamp":"2026-08-24T10:00:00Z"}
//
// $ curl http://localhost:3000/api/users
// [{"id":1,"name":"John Doe","email":"john@example.com"},{"id":2,"name":"Jane Smith","email":"jane@example.com"}]
//
// $ curl -X POST -H 'Content-Type: application/json' -d '{"id":42,"name":"Sam Lee","email":"sam@example.com"}' http://localhost:3000/api/users
// {"id":3,"name":"Sam Lee","email":"sam@example.com"}
//
// $ curl -X DELETE http://localhost:3000/api/users/3
//
// $ curl http://localhost:3000/api/users/3
// {"error":"User not found"}
//
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/docgen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ethan7628/HTTP-Methods/internal/api"
	"github.com/Ethan7628/HTTP-Methods/internal/config"
	"github.com/Ethan7628/HTTP-Methods/internal/metrics"
	"github.com/Ethan7628/HTTP-Methods/internal/model"
	"github.com/Ethan7628/HTTP-Methods/internal/store"
)

// HTTP server timeout constants.
const (
	readTimeout          = 10 * time.Second
	writeTimeout         = 10 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	storeMetricsInterval = 5 * time.Second
)

// nolint
func main() {
	// nolint
	var (
		routes   = flag.Bool("routes", false, "Generate router documentation")
		addr     = flag.String("addr", "", "application address, overrides the configured port")
		diagAddr = flag.String("diag_addr", "", "diag address, overrides the configured one")
	)

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// Use stderr for initialization errors since the logger level
		// comes out of the config.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	exporter, err := metrics.Init()
	if err != nil {
		sugar.Panicf("failed to initialize prometheus exporter %v", err)
	}

	usersStore := store.NewCollection(store.SeedUsers()...)
	postsStore := store.NewCollection(store.SeedPosts()...)

	server := api.NewServer(sugar, usersStore, postsStore)
	r := server.Router()

	// Passing -routes to the program will generate docs for the above
	// router definition.
	if *routes {
		// nolint
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/Ethan7628/HTTP-Methods",
			Intro:       "Welcome to the HTTP-Methods generated docs.",
		}))

		return
	}

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	if *addr == "" {
		*addr = cfg.Addr()
	}

	if *diagAddr == "" {
		*diagAddr = cfg.DiagAddr
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appServer := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	diagServer := &http.Server{
		Addr:              *diagAddr,
		Handler:           diagRouter,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go updateStoreMetrics(ctx, usersStore, postsStore)

	go func() {
		sugar.Infow("starting diag server", "addr", *diagAddr)

		if err := diagServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw(err.Error())
			stop()
		}
	}()

	go func() {
		sugar.Infow("starting server", "addr", *addr)

		if err := appServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw(err.Error())
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	sugar.Infow("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := appServer.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server shutdown failed", "error", err)
	}

	if err := diagServer.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("diag server shutdown failed", "error", err)
	}

	sugar.Infow("server stopped")
}

// newLogger builds the service logger at the configured level, falling back
// to info when the level does not parse.
func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

// updateStoreMetrics publishes collection sizes on a fixed cadence until the
// context is cancelled.
func updateStoreMetrics(ctx context.Context, usersStore *store.Collection[model.User], postsStore *store.Collection[model.Post]) {
	ticker := time.NewTicker(storeMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.SetCollectionSize("users", usersStore.Len())
			metrics.SetCollectionSize("posts", postsStore.Len())
		}
	}
}
