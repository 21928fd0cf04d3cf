package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/OB11TO/Computer-Graphics/pkg/imageio"
	"github.com/OB11TO/Computer-Graphics/pkg/renderer"
	"github.com/OB11TO/Computer-Graphics/pkg/scene"
)

// Limits for render request parameters
const (
	minImageSize = 16
	maxImageSize = 2048
	maxDepth     = 8
	maxWorkers   = 64
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	logger   *log.Logger
	renderID atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, logger: log.Default()}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  int            // Scene id
	Format imageio.Format // Output encoding
	Config renderer.RenderConfig
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the requested scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.ByID(req.Scene)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renderID.Add(1))
	raytracer := renderer.NewRaytracer(sceneObj, req.Config)
	raytracer.SetLogger(NewWebLogger(renderID, s.logger))

	fb, stats := raytracer.Render()

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, fb.ToImage(), req.Format); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/"+string(req.Format))
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Rays", strconv.FormatInt(stats.RaysTraced, 10))
	w.Header().Set("X-Render-Millis", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	defaults := renderer.DefaultRenderConfig()
	req := &RenderRequest{Format: imageio.FormatBMP}

	switch format := query.Get("format"); format {
	case "", string(imageio.FormatBMP):
	case string(imageio.FormatPNG):
		req.Format = imageio.FormatPNG
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	var err error
	if req.Scene, err = parseIntParam(query, "scene", scene.ReferenceSceneID, -1<<31, 1<<31-1); err != nil {
		return nil, err
	}
	if req.Config.Width, err = parseIntParam(query, "width", defaults.Width, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Config.Height, err = parseIntParam(query, "height", defaults.Height, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Config.MaxDepth, err = parseIntParam(query, "depth", defaults.MaxDepth, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Config.Workers, err = parseIntParam(query, "workers", defaults.Workers, 1, maxWorkers); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// handleSceneConfig returns the default render configuration and parameter limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	config := renderer.DefaultRenderConfig()
	response := map[string]interface{}{
		"scenes": []int{scene.ReferenceSceneID},
		"defaults": map[string]interface{}{
			"width":   config.Width,
			"height":  config.Height,
			"depth":   config.MaxDepth,
			"workers": config.Workers,
			"format":  imageio.FormatBMP,
		},
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":  map[string]int{"min": minImageSize, "max": maxImageSize},
			"depth":   map[string]int{"min": 0, "max": maxDepth},
			"workers": map[string]int{"min": 1, "max": maxWorkers},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// writeError sends a JSON error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
