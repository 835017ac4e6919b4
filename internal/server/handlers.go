package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/dipyourtrip/brochure-agent/internal/pipeline"
)

// GenerateRequest represents the request body for /generate
type GenerateRequest struct {
	CSVData string `json:"csvData"`
}

// GenerateResponse represents the success response for /generate
type GenerateResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// handleGenerate runs the full brochure pipeline synchronously and returns
// the hosted PDF URL. The request holds for the duration of the run.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	clientID := s.extractClientID(r)
	allowed, info := s.rateLimiter.Allow(clientID)
	s.setRateLimitHeaders(w, info)
	if !allowed {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
		s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CSVData == "" {
		s.errorResponse(w, http.StatusBadRequest, "No CSV data provided")
		return
	}

	log.Printf("Starting brochure run for client %s", clientID)

	result, err := s.pipeline.Run(r.Context(), pipeline.RunOptions{
		CSVData: req.CSVData,
		Verbose: s.verbose,
	})
	if err != nil {
		log.Printf("Brochure run failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		URL:     result.HostedURL,
		Message: fmt.Sprintf("Brochure for %q generated and uploaded successfully", result.TripTitle),
	})
}
