package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/chat"
	"github.com/jonathan/career-advisor/internal/report"
	"github.com/jonathan/career-advisor/internal/skillgap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// PrepRequest is the body of POST /api/prep.
type PrepRequest struct {
	Profile advisor.Profile `json:"profile"`
	Role    string          `json:"role" validate:"max=200"`
}

// ReportRequest is the body of POST /api/skills-analysis/report. A supplied
// Analysis is rendered as-is; otherwise one is computed from the request fields.
type ReportRequest struct {
	advisor.SkillsRequest
	Analysis *skillgap.Report `json:"analysis,omitempty"`
}

// decodeJSON reads a JSON body into dst and validates it.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return &ErrValidation{Message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)}
		case errors.Is(err, io.EOF):
			return &ErrValidation{Message: "request body is empty"}
		default:
			return &ErrValidation{Message: "invalid request body"}
		}
	}
	if err := s.validator.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// handleAdvice suggests career paths for the profile in the body
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var profile advisor.Profile
	if err := s.decodeJSON(w, r, &profile); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.advisor.Advice(r.Context(), profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handlePrep builds a preparation plan for a role
func (s *Server) handlePrep(w http.ResponseWriter, r *http.Request) {
	var req PrepRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.advisor.Prep(r.Context(), req.Profile, req.Role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleChat answers one mentor chat message
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req advisor.ChatRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.advisor.Chat(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleEndChat deletes a chat session
func (s *Server) handleEndChat(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	if !chat.ValidSessionID(sessionID) {
		s.writeError(w, r, &ErrValidation{Field: "session_id", Message: "must be a UUID"})
		return
	}

	if err := s.advisor.EndChat(r.Context(), sessionID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSkillsAnalysis returns a skills-gap analysis. Provider failures fall
// back to the offline analyzer, so this only fails on a bad request.
func (s *Server) handleSkillsAnalysis(w http.ResponseWriter, r *http.Request) {
	var req advisor.SkillsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	analysis := s.advisor.SkillsAnalysis(r.Context(), req)
	s.jsonResponse(w, http.StatusOK, map[string]any{"analysis": analysis})
}

// handleSkillsReport renders a skills-gap analysis as a printable HTML page
func (s *Server) handleSkillsReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	var analysis skillgap.Report
	if req.Analysis != nil {
		analysis = *req.Analysis
	} else {
		analysis = s.advisor.SkillsAnalysis(r.Context(), req.SkillsRequest)
	}

	// Render into a buffer so a template failure can still produce a JSON error
	var buf bytes.Buffer
	if err := report.Render(&buf, analysis, s.now()); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.requestLogger(r).WithError(err).Warn("failed to write report")
	}
}

// handleCareers lists the careers known to the offline analyzer
func (s *Server) handleCareers(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"careers": skillgap.Careers()})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": s.advisor.Provider(),
	})
}
