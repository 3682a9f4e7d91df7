package server

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestHandleHealth(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("Expected 200 ok, got %d %v", resp.StatusCode, body)
	}
}

func TestHandleScenes(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var body scene.ScenesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Groups) != 1 {
		t.Fatalf("Expected one scene group, got %d", len(body.Groups))
	}
	if got, want := len(body.Groups[0].Scenes), len(scene.ListBuiltInScenes()); got != want {
		t.Errorf("Expected %d scenes, got %d", want, got)
	}
}

func TestHandleRender(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/render?scene=default&width=24&height=16")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if resp.Header.Get("X-Render-ID") == "" {
		t.Error("Expected X-Render-ID header")
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
		t.Errorf("Expected 24x16 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleRender_Errors(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Handler())
	defer srv.Close()

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"unknown scene", "scene=nonexistent&width=8&height=8", http.StatusNotFound},
		{"width too small", "width=1", http.StatusBadRequest},
		{"height not a number", "height=tall", http.StatusBadRequest},
		{"unsupported format", "format=gif", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/render?" + tt.query)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

// readSSEEvents collects the data lines of a stream, keyed by event type
func readSSEEvents(t *testing.T, url string) map[string][]string {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	events := make(map[string][]string)
	var event string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			events[event] = append(events[event], strings.TrimPrefix(line, "data: "))
		}
	}
	return events
}

func TestHandleRenderStream(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Handler())
	defer srv.Close()

	events := readSSEEvents(t, srv.URL+"/api/render-stream?scene=cornell&width=16&height=12")

	if len(events["error"]) > 0 {
		t.Fatalf("Unexpected error events: %v", events["error"])
	}
	if len(events["console"]) == 0 {
		t.Error("Expected console events")
	}
	if len(events["complete"]) != 1 {
		t.Fatalf("Expected one complete event, got %d", len(events["complete"]))
	}

	var complete CompleteEvent
	if err := json.Unmarshal([]byte(events["complete"][0]), &complete); err != nil {
		t.Fatalf("Failed to decode complete event: %v", err)
	}
	if complete.Stats.TotalPixels != 16*12 {
		t.Errorf("Expected %d pixels, got %d", 16*12, complete.Stats.TotalPixels)
	}
	data, err := base64.StdEncoding.DecodeString(complete.ImageData)
	if err != nil {
		t.Fatalf("Failed to decode image data: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("Complete event should carry a PNG: %v", err)
	}
}

func TestHandleRenderStream_ErrorsAreJSON(t *testing.T) {
	srv := httptest.NewServer(NewServer(0).Handler())
	defer srv.Close()

	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"unknown scene", "scene=nonexistent&width=8&height=8", "nonexistent"},
		{"invalid width", "width=1", "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := readSSEEvents(t, srv.URL+"/api/render-stream?"+tt.query)
			if len(events["complete"]) != 0 {
				t.Errorf("Expected no complete event, got %d", len(events["complete"]))
			}
			if len(events["error"]) != 1 {
				t.Fatalf("Expected one error event, got %d", len(events["error"]))
			}

			var payload ErrorEvent
			if err := json.Unmarshal([]byte(events["error"][0]), &payload); err != nil {
				t.Fatalf("Error event is not JSON: %v (%q)", err, events["error"][0])
			}
			if !strings.Contains(payload.Error, tt.contains) {
				t.Errorf("Expected error mentioning %q, got %q", tt.contains, payload.Error)
			}
		})
	}
}
