package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/http/handlers"
	httpapi "github.com/Ghost3nexus/FASTSHOOTINGAI/internal/http/httpapi"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/infra"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/metrics"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/providers/genai"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	// Config & logger
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Gemini image editor client
	editorLogger := logger.With().Str("component", "genai").Logger()
	editor := genai.NewClient(genai.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		HTTPClient: &http.Client{Timeout: cfg.UpstreamTimeout},
		Logger:     &editorLogger,
	})
	if !editor.HasCredentials() {
		logger.Warn().Msg("GEMINI_API_KEY is not set; generate requests will fail until it is configured")
	}

	// Metrics registry
	collector := metrics.NewCollector("idphoto")

	// App container (inject config, editor, metrics)
	app := handlers.NewApp(cfg, logger, editor, collector)

	// Router with chi middleware stack
	router := httpapi.NewRouter(app)

	// HTTP server wrapper from infra
	server := infra.NewHTTPServer(cfg, router)

	// Start async
	go func() {
		logger.Info().Str("model", cfg.GeminiModel).Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
