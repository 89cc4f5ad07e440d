package httpadapter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/ish-observation-etl/internal/adapter/sqlite"
	"github.com/couchcryptid/ish-observation-etl/internal/ish"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Archive is the read side of the observation archive.
type Archive interface {
	Get(ctx context.Context, id string) (sqlite.Record, error)
	StationHistory(ctx context.Context, station string, from, to time.Time) ([]sqlite.Record, error)
}

// Options configures the optional endpoints of the server.
type Options struct {
	// Decoder backs POST /v1/decode. Nil uses the default descriptions.
	Decoder *ish.Decoder
	// Archive backs the /v1/observations routes. Nil leaves them unregistered.
	Archive Archive
	// MaxDecodeBytes caps the decode request body.
	MaxDecodeBytes int64
}

// Server exposes health, readiness, metrics, and decode HTTP endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	decoder    *ish.Decoder
	archive    Archive
	maxBody    int64
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and the
// /v1 decode and archive routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, opts Options, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      middleware.RequestID(middleware.Recoverer(mux)),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:  logger,
		decoder: opts.Decoder,
		archive: opts.Archive,
		maxBody: opts.MaxDecodeBytes,
	}
	if s.decoder == nil {
		s.decoder = ish.NewDecoder(ish.DefaultDescriptions())
	}
	if s.maxBody <= 0 {
		s.maxBody = 1 << 20
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/decode", s.handleDecode)
	if s.archive != nil {
		mux.HandleFunc("GET /v1/observations/{id}", s.handleGetObservation)
		mux.HandleFunc("GET /v1/stations/{station}/observations", s.handleStationHistory)
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// decodeResult is one element of the decode response, in request order.
type decodeResult struct {
	Line   int         `json:"line"`
	Report *ish.Report `json:"report,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	lines := ish.NewReader(http.MaxBytesReader(w, r.Body, s.maxBody))

	results := []decodeResult{}
	for lines.Next() {
		n := lines.LineNumber()
		report, err := s.decoder.Decode(lines.Line())
		if err != nil {
			results = append(results, decodeResult{Line: n, Error: err.Error()})
			continue
		}
		results = append(results, decodeResult{Line: n, Report: report})
	}

	if err := lines.Err(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		if errors.Is(err, bufio.ErrTooLong) {
			writeError(w, http.StatusRequestEntityTooLarge, "record too long")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(results) == 0 {
		writeError(w, http.StatusBadRequest, "no records in request body")
		return
	}

	s.logger.Debug("decoded records", "count", len(results))
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleGetObservation(w http.ResponseWriter, r *http.Request) {
	rec, err := s.archive.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "observation not found")
		return
	}
	if err != nil {
		s.logger.Error("archive lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "archive lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, toArchivedObservation(rec))
}

// handleStationHistory serves ?from=&to= (RFC 3339). Both default to the
// 24 hours ending now.
func (s *Server) handleStationHistory(w http.ResponseWriter, r *http.Request) {
	to := time.Now().UTC()
	from := to.Add(-24 * time.Hour)

	q := r.URL.Query()
	var err error
	if v := q.Get("from"); v != "" {
		if from, err = time.Parse(time.RFC3339, v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid from: "+err.Error())
			return
		}
	}
	if v := q.Get("to"); v != "" {
		if to, err = time.Parse(time.RFC3339, v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid to: "+err.Error())
			return
		}
	}
	if !from.Before(to) {
		writeError(w, http.StatusBadRequest, "from must be before to")
		return
	}

	records, err := s.archive.StationHistory(r.Context(), r.PathValue("station"), from, to)
	if err != nil {
		s.logger.Error("archive query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "archive query failed")
		return
	}

	out := make([]archivedObservation, 0, len(records))
	for _, rec := range records {
		out = append(out, toArchivedObservation(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

type archivedObservation struct {
	ID               string          `json:"id"`
	Station          string          `json:"station"`
	ReportType       string          `json:"report_type"`
	ObservedAt       time.Time       `json:"observed_at"`
	Lat              float64         `json:"lat"`
	Lon              float64         `json:"lon"`
	AirTemperature   *float64        `json:"air_temperature"`
	DewPoint         *float64        `json:"dew_point"`
	SeaLevelPressure *float64        `json:"sea_level_pressure"`
	RelativeHumidity *float64        `json:"relative_humidity"`
	RawLine          string          `json:"raw_line"`
	Report           json.RawMessage `json:"report"`
	ProcessedAt      time.Time       `json:"processed_at"`
}

func toArchivedObservation(r sqlite.Record) archivedObservation {
	return archivedObservation{
		ID:               r.ID,
		Station:          r.Station,
		ReportType:       r.ReportType,
		ObservedAt:       r.ObservedAt,
		Lat:              r.Lat,
		Lon:              r.Lon,
		AirTemperature:   r.AirTemperature,
		DewPoint:         r.DewPoint,
		SeaLevelPressure: r.SeaLevelPressure,
		RelativeHumidity: r.RelativeHumidity,
		RawLine:          r.RawLine,
		Report:           json.RawMessage(r.ReportJSON),
		ProcessedAt:      r.ProcessedAt,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
