package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"melodex/catalog"
	"melodex/config"
	"melodex/core/recommend"
	"melodex/logger"
)

// NewRouter builds the API route table.
func NewRouter(h *APIHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)

	// Catalog browsing
	router.HandleFunc("/api/songs", h.GetSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/songs/popular", h.GetPopularSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/songs/{id}", h.GetSongHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/songs/{id}/features", h.GetSongFeaturesHandler).Methods(http.MethodGet)

	// Recommendations
	router.HandleFunc("/api/recommend/song/{id}", h.RecommendBySongHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/recommend/mood/{mood}", h.RecommendByMoodHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/recommend/features", h.RecommendByFeaturesHandler).Methods(http.MethodPost)

	// Selector data for UIs
	router.HandleFunc("/api/genres", h.GetGenresHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/genres/stats", h.GetGenreStatsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/genres/{genre}/songs", h.GetGenreSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/moods", h.GetMoodsHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/health", h.HealthHandler).Methods(http.MethodGet)

	return router
}

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	})

	cat, err := catalog.LoadCSV(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("Failed to load catalog", logger.ErrorField(err))
	}
	svc, err := recommend.NewService(cat)
	if err != nil {
		logger.Fatal("Failed to build recommendation service", logger.ErrorField(err))
	}
	logger.Info("Catalog loaded",
		logger.String("path", cfg.CatalogPath),
		logger.Int("songs", cat.Len()),
		logger.Int("genres", len(cat.Genres())))

	apiHandler := NewAPIHandler(svc, cfg)

	// Hot reload: rebuild the whole service off to the side, swap atomically.
	if cfg.WatchCatalog {
		watcher, err := catalog.Watch(cfg.CatalogPath, func(next *catalog.Catalog) {
			nextSvc, err := recommend.NewService(next)
			if err != nil {
				logger.Error("Rebuilt catalog rejected", logger.ErrorField(err))
				return
			}
			apiHandler.Swap(nextSvc)
		})
		if err != nil {
			logger.Warn("Catalog watcher unavailable", logger.ErrorField(err))
		} else {
			defer watcher.Close()
		}
	}

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      NewRouter(apiHandler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}
