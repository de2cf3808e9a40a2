package handlers

import (
	"net/http"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/imagegen"
)

// StyleOptions reports the recognized option values and the fallback defaults.
func (a *App) StyleOptions(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"backgroundColors": imagegen.BackgroundColors(),
		"outfits":          imagegen.Outfits(),
		"defaults": map[string]string{
			"backgroundHex": imagegen.DefaultBackgroundHex,
			"outfitPhrase":  imagegen.DefaultOutfitPhrase,
		},
	})
}
