package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/imagegen"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/metrics"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/middleware"
)

// generateRequest decodes with pointer fields so a field that is absent and
// a field explicitly set to its zero value (enableBeautification: false) can
// be told apart.
type generateRequest struct {
	Base64Image          *string `json:"base64Image"`
	MimeType             *string `json:"mimeType"`
	BackgroundColor      *string `json:"backgroundColor"`
	Outfit               *string `json:"outfit"`
	EnableBeautification *bool   `json:"enableBeautification"`
}

type generateResponse struct {
	Base64Image string `json:"base64Image"`
}

const (
	msgInvalidPayload    = "invalid request payload"
	msgMissingCredential = "server configuration error: GEMINI_API_KEY is not set"
	msgSafetyBlocked     = "The request was blocked by the safety policy. Please try a different photo or adjust the options."
	msgEmptyResponse     = "The model returned an empty response. Please try again."
	msgNoUsableContent   = "Could not generate the photo. Please try again."
	msgGenerationFailed  = "image generation failed"
	msgTextOnlyPrefix    = "The model could not generate the photo: "
)

func (r *generateRequest) missingFields() []string {
	var missing []string
	if r.Base64Image == nil || *r.Base64Image == "" {
		missing = append(missing, "base64Image")
	}
	if r.MimeType == nil || *r.MimeType == "" {
		missing = append(missing, "mimeType")
	}
	if r.BackgroundColor == nil || *r.BackgroundColor == "" {
		missing = append(missing, "backgroundColor")
	}
	if r.Outfit == nil || *r.Outfit == "" {
		missing = append(missing, "outfit")
	}
	if r.EnableBeautification == nil {
		missing = append(missing, "enableBeautification")
	}
	return missing
}

// Generate validates the request, performs exactly one upstream generation
// call, and maps the result onto an HTTP response. The route is mounted for
// all methods so this handler owns the 405 contract.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		a.error(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := time.Now()
	requestID := middleware.RequestIDFromContext(r.Context())

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Metrics.RecordGeneration(metrics.OutcomeInvalidRequest, time.Since(start))
		a.error(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}
	if missing := req.missingFields(); len(missing) > 0 {
		a.Metrics.RecordGeneration(metrics.OutcomeInvalidRequest, time.Since(start))
		a.error(w, http.StatusBadRequest, "missing required field(s): "+strings.Join(missing, ", "))
		return
	}

	if !a.Editor.HasCredentials() {
		// The response names the variable but never echoes values or
		// environment contents.
		a.Logger.Error().Str("request_id", requestID).Msg("generate: GEMINI_API_KEY is not configured")
		a.Metrics.RecordGeneration(metrics.OutcomeMissingCredential, time.Since(start))
		a.error(w, http.StatusInternalServerError, msgMissingCredential)
		return
	}

	opts := imagegen.PhotoOptions{
		BackgroundColor:      *req.BackgroundColor,
		Outfit:               *req.Outfit,
		EnableBeautification: *req.EnableBeautification,
	}
	source := imagegen.SourceImage{
		Base64Data: *req.Base64Image,
		MIMEType:   *req.MimeType,
	}

	result, err := a.Editor.EditImage(r.Context(), source, imagegen.BuildInstruction(opts))
	if err != nil {
		msg := strings.TrimSpace(err.Error())
		if msg == "" {
			msg = msgGenerationFailed
		}
		a.Logger.Error().Err(err).Str("request_id", requestID).Msg("generate: upstream call failed")
		a.Metrics.RecordGeneration(metrics.OutcomeUpstreamError, time.Since(start))
		a.error(w, http.StatusInternalServerError, msg)
		return
	}

	// Outcome priority: safety block, empty response, image, text, generic.
	switch {
	case result.SafetyBlocked():
		a.Logger.Warn().Str("request_id", requestID).Str("finish_reason", result.FinishReason).Msg("generate: blocked by safety policy")
		a.Metrics.RecordGeneration(metrics.OutcomeSafetyBlocked, time.Since(start))
		a.error(w, http.StatusBadRequest, msgSafetyBlocked)
		return
	case result == nil || len(result.Segments) == 0:
		a.Logger.Warn().Str("request_id", requestID).Msg("generate: empty model response")
		a.Metrics.RecordGeneration(metrics.OutcomeEmptyResponse, time.Since(start))
		a.error(w, http.StatusInternalServerError, msgEmptyResponse)
		return
	}

	if img, ok := result.FirstImage(); ok {
		a.Logger.Info().
			Str("request_id", requestID).
			Str("background", imagegen.DisplayName(opts.BackgroundColor)).
			Str("outfit", imagegen.DisplayName(opts.Outfit)).
			Bool("beautification", opts.EnableBeautification).
			Dur("duration", time.Since(start)).
			Msg("generate: photo generated")
		a.Metrics.RecordGeneration(metrics.OutcomeOK, time.Since(start))
		a.json(w, http.StatusOK, generateResponse{Base64Image: img.Data})
		return
	}

	if text, ok := result.FirstText(); ok {
		a.Logger.Warn().Str("request_id", requestID).Str("model_text", text).Msg("generate: model returned text instead of an image")
		a.Metrics.RecordGeneration(metrics.OutcomeTextResponse, time.Since(start))
		a.error(w, http.StatusInternalServerError, msgTextOnlyPrefix+text)
		return
	}

	a.Metrics.RecordGeneration(metrics.OutcomeEmptyResponse, time.Since(start))
	a.error(w, http.StatusInternalServerError, msgNoUsableContent)
}
