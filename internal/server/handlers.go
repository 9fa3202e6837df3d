package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	medsumerrors "github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/summarizer"
)

const logPreviewChars = 50

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	log := s.log.With("requestID", summarizer.RequestIDFromContext(r.Context()))

	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	var req summarizer.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, summarizer.ErrorResponse{Detail: "Request body too large"})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, summarizer.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	text := strings.TrimSpace(req.Text)
	log.Debug("received text for summarization", "preview", preview(text), "chars", len([]rune(text)))
	if text == "" {
		writeJSON(w, http.StatusBadRequest, summarizer.ErrorResponse{Detail: "Text is empty"})
		return
	}

	start := time.Now()
	summary, err := s.backend.Summarize(r.Context(), text)
	if err != nil {
		log.Error("inference failed", "error", err, "elapsed", time.Since(start))
		writeJSON(w, statusFor(err), summarizer.ErrorResponse{Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, summarizer.SummarizeResponse{Summary: summary})
}

// statusFor maps a backend error to the response status. Only input the
// backend rejects is the caller's fault.
func statusFor(err error) int {
	if medsumerrors.GetKind(err) == medsumerrors.KindInvalid {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := s.backend.Info()
	writeJSON(w, http.StatusOK, summarizer.HealthResponse{
		Status:    "ok",
		ModelName: info.Name,
		Device:    info.Device,
	})
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= logPreviewChars {
		return text
	}
	return string(runes[:logPreviewChars]) + "..."
}
