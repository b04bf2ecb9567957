package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sports-webcast/internal/artifact"
	"sports-webcast/internal/catalog"
	"sports-webcast/internal/platform/config"
	"sports-webcast/internal/platform/logger"
	"sports-webcast/internal/platform/metrics"
	"sports-webcast/internal/resolver"
	"sports-webcast/internal/webcast"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	mode := config.GetEnv("MODE", "once") // "once" or "serve"
	port := config.GetEnv("PORT", "8080")
	apiURL := config.GetEnv("API_URL", catalog.DefaultURL)
	playlistPath := config.GetEnv("PLAYLIST_PATH", "SportsWebcast.m3u8")
	probeWorkers := config.GetEnvInt("PROBE_WORKERS", resolver.DefaultWorkers)
	probeBudget := config.GetEnvDuration("PROBE_BUDGET", resolver.DefaultBudget)
	probeSettle := config.GetEnvDuration("PROBE_SETTLE", resolver.DefaultSettle)
	refreshEvery := config.GetEnvDuration("REFRESH_INTERVAL", 15*time.Minute)
	logLevel := config.GetEnv("LOG_LEVEL", "info")
	logFormat := config.GetEnv("LOG_FORMAT", "json")

	log := logger.New(logLevel, logFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sniffer, closeBrowser := resolver.NewSniffer(ctx, probeSettle, log)
	defer closeBrowser()

	met := metrics.New()
	svc := webcast.NewService(
		catalog.New(apiURL),
		resolver.NewPool(sniffer, probeWorkers, probeBudget, log),
		artifact.NewFileStore(playlistPath),
		log,
		met,
	)

	log.Info("starting",
		"mode", mode,
		"playlist_path", playlistPath,
		"probe_workers", probeWorkers,
	)

	if mode != "serve" {
		if _, err := svc.Run(ctx); err != nil {
			log.Error("run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	h := webcast.NewHandler(svc, log)

	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", met.Handler().ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/playlist.m3u8", h.GetPlaylist)
	r.Post("/refresh", h.Refresh)
	r.Get("/status", h.Status)

	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Periodic refresh loop; one run immediately, then on the interval.
	go func() {
		if _, err := svc.Run(ctx); err != nil {
			log.Error("initial run failed", "error", err)
		}
		ticker := time.NewTicker(refreshEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := svc.Run(ctx); err != nil {
					log.Error("scheduled run failed", "error", err)
				}
			}
		}
	}()

	log.Info("server starting",
		"port", port,
		"refresh_interval", refreshEvery.String(),
	)

	<-ctx.Done()

	log.Info("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
