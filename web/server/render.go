package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/imageio"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// CompleteEvent is the final SSE event of a streamed render
type CompleteEvent struct {
	RenderID  string `json:"renderId"`
	Format    string `json:"format"`
	ImageData string `json:"imageData"` // Base64 encoded image
	Stats     Stats  `json:"stats"`
}

// renderResult is an encoded render and its statistics
type renderResult struct {
	data  []byte
	stats renderer.RenderStats
}

// handleRender renders a scene once and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := uuid.New().String()
	logger := NewWebLogger(renderID, nil)

	result, err := s.render(r.Context(), req, logger)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("[%s] render failed: %v", renderID, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h := w.Header()
	h.Set("Content-Type", req.Format.ContentType())
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("X-Render-ID", renderID)
	h.Set("X-Render-Hits", strconv.Itoa(result.stats.Hits))
	h.Set("X-Render-Duration-Ms", strconv.FormatInt(result.stats.Duration.Milliseconds(), 10))
	h.Set("X-Render-Average-Luminance", strconv.FormatFloat(result.stats.AverageLuminance, 'f', 4, 64))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.data); err != nil {
		log.Printf("[%s] write failed: %v", renderID, err)
	}
}

// handleRenderStream renders a scene while streaming log lines via SSE,
// finishing with a "complete" event that carries the image
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := uuid.New().String()
	consoleChan := make(chan ConsoleMessage, 50)
	logger := NewWebLogger(renderID, consoleChan)

	// The console goroutine is the only writer until it finishes
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.streamConsoleMessages(ctx, w, consoleChan)
	}()

	result, err := s.render(ctx, req, logger)
	close(consoleChan)
	<-done

	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	data, err := json.Marshal(CompleteEvent{
		RenderID:  renderID,
		Format:    string(req.Format),
		ImageData: base64.StdEncoding.EncodeToString(result.data),
		Stats:     newStats(result.stats),
	})
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// render builds the requested scene, renders it and encodes the image
func (s *Server) render(ctx context.Context, req *RenderRequest, logger core.Logger) (*renderResult, error) {
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, err
	}

	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height, renderer.Config{
		NumWorkers: 0, // Auto-detect
		Logger:     logger,
	})
	img, stats, err := raytracer.RenderPassContext(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, req.Format); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &renderResult{data: buf.Bytes(), stats: stats}, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// streamConsoleMessages forwards console messages as SSE events until the
// channel is closed
func (s *Server) streamConsoleMessages(ctx context.Context, w http.ResponseWriter, consoleChan <-chan ConsoleMessage) {
	for msg := range consoleChan {
		if ctx.Err() != nil {
			// Client disconnected; keep draining so the logger never blocks
			continue
		}
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}
		s.sendSSEEvent(w, "console", string(data))
	}
}

// ErrorEvent is the payload of an SSE "error" event
type ErrorEvent struct {
	Error string `json:"error"`
}

// sendSSEError sends an error as a JSON SSE event
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	data, err := json.Marshal(ErrorEvent{Error: message})
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "error", string(data))
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
