package main

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yumyai/metagame/internal/config"
	"github.com/yumyai/metagame/logger"
	ggdb "github.com/yumyai/metagame/pkg/db"
	"github.com/yumyai/metagame/pkg/handler"
	"github.com/yumyai/metagame/pkg/middle"
	"go.uber.org/zap"
)

const VERSION = "0.1.0"

func main() {

	// Try load env before reading the config, so .env values count.
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	level, _ := cfg.Level() // validated by Load
	if err := logger.InitLogger(level, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, results, err := ggdb.Open(ctx, cfg.ResultsDSN)
	if err != nil {
		logger.Fatal("Cannot open results database", zap.Error(err))
	}
	defer conn.Close()

	gctx := &handler.GameContext{
		Sessions:   handler.NewGameSessionManager(cfg.Seed),
		Results:    results,
		CookieName: cfg.CookieName,
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	if cfg.ResultsDSN == "" {
		logger.Info("Round results kept in memory")
	} else {
		logger.Info("Open results database on", zap.String("DSN", cfg.ResultsDSN))
	}

	go gctx.Sessions.RunSweeper(ctx, cfg.SweepInterval, cfg.SessionIdle, func(sid string) {
		logger.Debug("Session expired", zap.String("session", sid))
		gctx.ForgetSession(ctx, sid)
	})

	mux := NewRouter(gctx, cfg)
	app := middle.Chain(mux,
		middle.RequestIDMiddleware(logger.L()),
		middle.LoggingMiddleware(logger.L()),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown:", zap.Error(err))
		}
	}()

	logger.Info("Server starting on", zap.String("addr", cfg.Addr))
	httpErr := srv.ListenAndServe()
	if httpErr != nil && !errors.Is(httpErr, http.ErrServerClosed) {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
	logger.Info("Server stopped")
}

func NewRouter(gctx *handler.GameContext, cfg config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Page
	mux.HandleFunc("GET /{$}", gctx.MainPage)

	// Game actions
	mux.HandleFunc("POST /game/drag", gctx.DragStartHandler)
	mux.HandleFunc("POST /game/drag/cancel", gctx.DragCancelHandler)
	mux.HandleFunc("POST /game/drop", gctx.DropHandler)
	mux.HandleFunc("POST /game/return", gctx.ReturnHandler)
	mux.HandleFunc("POST /game/new", gctx.NewGameHandler)
	mux.HandleFunc("POST /game/library", gctx.ToggleLibraryHandler)

	// API routes
	mux.HandleFunc("GET /api/v1/health", gctx.HealthCheck)
	mux.HandleFunc("GET /api/v1/game", gctx.GameStateAPI)
	mux.HandleFunc("GET /api/v1/results", gctx.ResultsAPI)
	mux.HandleFunc("GET /api/v1/categories", handler.CategoriesHandler)

	setupStaticFiles(mux, cfg)

	return mux
}

// Stylesheet and drag-and-drop script
func setupStaticFiles(mux *http.ServeMux, cfg config.Config) {
	if !cfg.HasStaticDir() {
		logger.Warn("No static directory, page will have no style or drag and drop", zap.String("dir", cfg.StaticDir))
		return
	}
	_ = mime.AddExtensionType(".js", "text/javascript")
	_ = mime.AddExtensionType(".css", "text/css")
	fs := http.FileServer(http.Dir(cfg.StaticDir))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))
}
