package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/yourusername/betsync/internal/ingest"
	"github.com/yourusername/betsync/internal/metrics"
	"github.com/yourusername/betsync/internal/models"
)

// errorResponse is the JSON body for every non-2xx answer.
type errorResponse struct {
	Error          string   `json:"error"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// handleAnalyze accepts a bet-history CSV (raw text/csv body or a multipart
// upload under the "file" field) and returns the full analysis result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := s.uploadReader(r)
	if err != nil {
		metrics.RecordFailure("bad_upload")
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	defer body.Close()

	records, err := ingest.Read(body)
	if err != nil {
		s.writeIngestError(w, r, err)
		return
	}

	result, err := s.analyzer.Run(records)
	if err != nil {
		if errors.Is(err, models.ErrNoValidRows) {
			metrics.RecordFailure("no_valid_rows")
			writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
			return
		}
		s.logger.WithError(err).Error("Analysis failed")
		metrics.RecordFailure("internal")
		writeError(w, http.StatusInternalServerError, "analysis failed", nil)
		return
	}

	metrics.RecordAnalysis(time.Since(start).Seconds(), result.DroppedRows, result.Profile.Score)
	writeJSON(w, http.StatusOK, result)
}

// handleSample serves the CSV helper dataset so clients can try the endpoint.
func (s *Server) handleSample(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, ingest.SampleCSV)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// uploadReader extracts the CSV stream from the request, capping it at the
// configured upload size.
func (s *Server) uploadReader(r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, s.cfg.Server.MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
			return nil, errors.New("malformed multipart upload")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New(`multipart upload is missing the "file" field`)
		}
		return file, nil
	}

	return r.Body, nil
}

func (s *Server) writeIngestError(w http.ResponseWriter, r *http.Request, err error) {
	var missingErr *models.MissingColumnsError
	switch {
	case errors.As(err, &missingErr):
		metrics.RecordFailure("missing_columns")
		writeError(w, http.StatusBadRequest, missingErr.Error(), missingErr.Columns)
	case errors.Is(err, models.ErrEmptyInput):
		metrics.RecordFailure("empty_input")
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			metrics.RecordFailure("upload_too_large")
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large", nil)
			return
		}
		s.logger.WithError(err).WithField("path", r.URL.Path).Warn("Unreadable upload")
		metrics.RecordFailure("bad_upload")
		writeError(w, http.StatusBadRequest, "unreadable CSV upload", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, missing []string) {
	writeJSON(w, status, errorResponse{Error: msg, MissingColumns: missing})
}
