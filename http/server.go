package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagebrief"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes caps the size of an analyze request body.
const MaxRequestBodyBytes = 64 << 10

// codes maps application error codes to HTTP status codes. EFETCH is
// handled separately because it carries the upstream status.
var codes = map[string]int{
	pagebrief.EINVALID:        http.StatusBadRequest,
	pagebrief.EUNAUTHORIZED:   http.StatusUnauthorized,
	pagebrief.EFETCH:          http.StatusGatewayTimeout,
	pagebrief.EUNSUPPORTED:    http.StatusUnsupportedMediaType,
	pagebrief.EINSUFFICIENT:   http.StatusUnprocessableEntity,
	pagebrief.ESUMMARYTIMEOUT: http.StatusGatewayTimeout,
	pagebrief.ESUMMARY:        http.StatusBadGateway,
	pagebrief.EINTERNAL:       http.StatusInternalServerError,
}

// titles are the short error strings returned to clients.
var titles = map[string]string{
	pagebrief.EINVALID:        "Invalid request",
	pagebrief.EUNAUTHORIZED:   "Unauthorized",
	pagebrief.EFETCH:          "Failed to fetch URL",
	pagebrief.EUNSUPPORTED:    "Unsupported content type",
	pagebrief.EINSUFFICIENT:   "Insufficient content",
	pagebrief.ESUMMARYTIMEOUT: "Summarization timed out",
	pagebrief.ESUMMARY:        "Summarization failed",
	pagebrief.EINTERNAL:       "Internal server error",
}

// ErrorStatusCode returns the HTTP status code for err. Fetch failures
// carry the upstream status when a response was received and map to 504
// when none was.
func ErrorStatusCode(err error) int {
	code := pagebrief.ErrorCode(err)
	if code == pagebrief.EFETCH {
		if status := pagebrief.ErrorStatus(err); status >= 400 && status <= 599 {
			return status
		}
	}
	if status, ok := codes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every failed response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status"`
	Kind    string `json:"kind"`
}

// Server exposes a pagebrief.Analyzer over HTTP.
type Server struct {
	router        chi.Router
	analyzer      pagebrief.Analyzer
	authenticator pagebrief.Authenticator
	logger        *slog.Logger
	validate      *validator.Validate
}

// NewServer creates a new Server. A nil authenticator leaves the API open;
// a nil logger discards request logs.
func NewServer(analyzer pagebrief.Analyzer, authenticator pagebrief.Authenticator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		analyzer:      analyzer,
		authenticator: authenticator,
		logger:        logger,
		validate:      validator.New(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/analyze", s.handleAnalyze)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.authenticator != nil {
		if _, err := s.authenticator.Authenticate(r.Context(), bearerToken(r)); err != nil {
			s.writeError(w, r, unauthorized(err))
			return
		}
	}

	var req pagebrief.AnalysisRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, pagebrief.Errorf(pagebrief.EINVALID, "request body exceeds %d bytes", MaxRequestBodyBytes))
			return
		}
		s.writeError(w, r, pagebrief.Errorf(pagebrief.EINVALID, `request body must be JSON of the form {"url": "..."}`))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, r, pagebrief.Errorf(pagebrief.EINVALID, "url is required"))
		return
	}

	analysis, err := s.analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, analysis)
}

// writeError renders err as an ErrorResponse. Internal failures are logged
// and their messages withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := pagebrief.ErrorCode(err)
	status := ErrorStatusCode(err)

	resp := ErrorResponse{
		Error:  titles[code],
		Status: status,
		Kind:   code,
	}
	if code == pagebrief.EINTERNAL {
		s.logger.Error("internal error",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"err", err,
		)
	} else {
		resp.Details = pagebrief.ErrorMessage(err)
	}

	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		begin := time.Now()
		defer func() {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote", r.RemoteAddr,
				"duration", time.Since(begin),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func unauthorized(err error) error {
	if pagebrief.ErrorCode(err) == pagebrief.EUNAUTHORIZED {
		return err
	}
	return pagebrief.Errorf(pagebrief.EUNAUTHORIZED, "invalid credentials")
}
