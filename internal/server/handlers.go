package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/afalcongonzalez/chromaviews/internal/colour"
	"github.com/afalcongonzalez/chromaviews/internal/image"
)

// errorResponse is the JSON envelope for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart upload under the "image" field plus an
// optional k query parameter and returns the analysis result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxImageBytes())

	k := s.cfg.DefaultClusters
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid k %q: not an integer", raw))
			return
		}
		k = parsed
	}
	if k < colour.MinClusters || k > colour.MaxClusters {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("k must be between %d and %d, got %d", colour.MinClusters, colour.MaxClusters, k))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("image exceeds the %d MB upload limit; compress it first", s.cfg.MaxImageMB))
			return
		}
		s.writeError(w, http.StatusBadRequest, "missing image upload field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("image exceeds the %d MB upload limit; compress it first", s.cfg.MaxImageMB))
			return
		}
		s.writeError(w, http.StatusBadRequest, "failed to read image upload")
		return
	}

	s.logger.Debug("analyze request",
		"filename", header.Filename,
		"size", len(data),
		"k", k,
	)

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.AnalysisTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, data, k)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	s.logger.Info("analysis complete",
		"filename", header.Filename,
		"analysed", fmt.Sprintf("%dx%d", result.Width, result.Height),
		"palette", len(result.Palette),
		"duration", time.Since(start),
	)
	writeJSON(w, http.StatusOK, result)
}

// handleName resolves a hex colour to its nearest reference name without
// running the image pipeline.
func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	hex := r.URL.Query().Get("hex")
	if hex == "" {
		s.writeError(w, http.StatusBadRequest, "missing hex query parameter")
		return
	}

	match, err := s.analyzer.NameForHex(hex)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

// writeAnalysisError maps engine error kinds to HTTP statuses: decode and
// parameter failures are the caller's fault, timeouts surface as such, and
// anything else is an internal fault that is logged but not exposed.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, image.ErrDecode):
		s.writeError(w, http.StatusBadRequest, "could not decode image; JPEG, PNG and WebP are supported")
	case errors.Is(err, colour.ErrInvalidParameter):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusGatewayTimeout, "analysis timed out")
	default:
		s.logger.Error("analysis failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", msg)
	} else {
		s.logger.Debug("request rejected", "status", status, "reason", msg)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
