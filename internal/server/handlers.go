package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/spacesedan/positivizer/config"
	"github.com/spacesedan/positivizer/internal/analyzer"
)

const maxBodyBytes = 64 << 10

type indexData struct {
	Settings config.Settings
	Year     int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, indexData{Settings: s.settings, Year: 2025}); err != nil {
		slog.Error("[Server] Failed to render index", slog.String("error", err.Error()))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	components := map[string]bool{}
	if s.health != nil {
		components = s.health.Status()
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"components": components,
	})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.settings)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	// Fields missing from the request keep the configured defaults.
	settings := s.settings
	req := struct {
		Text     string           `json:"text"`
		Settings *config.Settings `json:"settings"`
	}{Settings: &settings}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.analyzer.Analyze(r.Context(), req.Text, settings)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyInput) {
			respondError(w, http.StatusBadRequest, analyzer.EmptyInputMessage)
			return
		}
		slog.Error("[Server] Analysis failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePositivize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rewrite := s.analyzer.Positivize(r.Context(), req.Text)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"text":             req.Text,
		"positive_version": rewrite.String(),
		"tokens":           rewrite.Tokens,
	})
}
