package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	app := newTestApp(&stubEditor{})
	rr := httptest.NewRecorder()
	app.Health(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Fatalf("unexpected body: %#v", resp)
	}
}

func TestStyleOptions(t *testing.T) {
	app := newTestApp(&stubEditor{})
	rr := httptest.NewRecorder()
	app.StyleOptions(rr, httptest.NewRequest(http.MethodGet, "/v1/options", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		BackgroundColors []string          `json:"backgroundColors"`
		Outfits          []string          `json:"outfits"`
		Defaults         map[string]string `json:"defaults"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	wantColors := []string{"blue", "gray", "white"}
	if len(resp.BackgroundColors) != len(wantColors) {
		t.Fatalf("backgroundColors = %#v", resp.BackgroundColors)
	}
	for i, c := range wantColors {
		if resp.BackgroundColors[i] != c {
			t.Fatalf("backgroundColors[%d] = %q, want %q", i, resp.BackgroundColors[i], c)
		}
	}

	wantOutfits := []string{"female-suit", "male-suit"}
	if len(resp.Outfits) != len(wantOutfits) {
		t.Fatalf("outfits = %#v", resp.Outfits)
	}
	for i, o := range wantOutfits {
		if resp.Outfits[i] != o {
			t.Fatalf("outfits[%d] = %q, want %q", i, resp.Outfits[i], o)
		}
	}

	if resp.Defaults["backgroundHex"] == "" || resp.Defaults["outfitPhrase"] == "" {
		t.Fatalf("defaults missing: %#v", resp.Defaults)
	}
}
