// Package idphoto is the Go client for the FASTSHOOTING AI generate
// endpoint. It performs one HTTP call per invocation and normalizes every
// failure into an error carrying a human-readable message.
package idphoto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoImage indicates a success status whose body carried no image data.
var ErrNoImage = errors.New("idphoto: no image data returned")

// errorBodyLimit bounds how much of a non-JSON error body is surfaced to the
// caller, e.g. an HTML page from an infrastructure timeout.
const errorBodyLimit = 200

// Options controls how the client is configured.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// Client calls the generate endpoint. One invocation means one in-flight
// request; callers sequence their own retries if they want any.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Request carries the photo and the style options.
type Request struct {
	Base64Image          string `json:"base64Image"`
	MIMEType             string `json:"mimeType"`
	BackgroundColor      string `json:"backgroundColor"`
	Outfit               string `json:"outfit"`
	EnableBeautification bool   `json:"enableBeautification"`
}

// NewClient constructs a client with sane defaults. The default HTTP client
// timeout is sized for a synchronous generation call.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "http://localhost:8080"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Generate posts the request and returns the generated photo as a base64
// string. Failures of any kind (transport, non-success status, missing image
// data) come back as errors with a displayable message.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Msg("idphoto: generate request failed")
		return "", fmt.Errorf("call generate endpoint: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := errorMessage(resp.StatusCode, data)
		c.logger.Warn().Int("status", resp.StatusCode).Str("message", msg).Msg("idphoto: generate rejected")
		return "", errors.New(msg)
	}

	var out struct {
		Base64Image string `json:"base64Image"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Base64Image == "" {
		return "", ErrNoImage
	}
	return out.Base64Image, nil
}

// errorMessage prefers the structured error field; a non-JSON body falls
// back to its text truncated to errorBodyLimit characters plus an ellipsis.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Sprintf("generate request failed with status %d", status)
	}
	if runes := []rune(text); len(runes) > errorBodyLimit {
		text = string(runes[:errorBodyLimit]) + "..."
	}
	return text
}
