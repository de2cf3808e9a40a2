package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/imagegen"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/infra"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/metrics"
)

// App bundles the dependencies shared by the HTTP handlers. All of them are
// injected at construction.
type App struct {
	Config  *infra.Config
	Logger  infra.Logger
	Editor  imagegen.Editor
	Metrics *metrics.Collector
}

func NewApp(cfg *infra.Config, logger infra.Logger, editor imagegen.Editor, collector *metrics.Collector) *App {
	return &App{Config: cfg, Logger: logger, Editor: editor, Metrics: collector}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}
