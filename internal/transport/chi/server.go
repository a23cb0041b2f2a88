// Package chi renders the proxy's HTTP surface: health and usage reads plus
// the relayed upstream endpoints.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/courtside-cloud/hooprelay/internal/domain"
	domusage "github.com/courtside-cloud/hooprelay/internal/domain/usage"
	relayuc "github.com/courtside-cloud/hooprelay/internal/usecase/relay"
	usageuc "github.com/courtside-cloud/hooprelay/internal/usecase/usage"
)

const serviceName = "hooprelay"

// Server holds the HTTP handlers for the proxy API.
type Server struct {
	relay  *relayuc.Service
	usage  *usageuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(relay *relayuc.Service, usage *usageuc.Service, logger *zap.Logger) *Server {
	return &Server{
		relay:  relay,
		usage:  usage,
		logger: logger,
	}
}

// Register mounts all proxy routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Health)
	r.Get("/health", s.Health)
	r.Get("/api/usage", s.Usage)
	r.Get("/api/odds", s.Odds)
	r.Get("/api/ratings", s.Ratings)
	r.Get("/api/games", s.Games)
	r.Get("/api/teams", s.Teams)
	r.Get("/metrics", s.Metrics)
}

type healthResponse struct {
	Status  string           `json:"status"`
	Service string           `json:"service"`
	Usage   domusage.Snapshot `json:"usage"`
}

// Health handles GET / and GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: serviceName,
		Usage:   s.usage.Snapshot(r.Context()),
	})
}

// Usage handles GET /api/usage.
func (s *Server) Usage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.usage.Snapshot(r.Context()))
}

// Odds handles GET /api/odds. Quota-exempt.
func (s *Server) Odds(w http.ResponseWriter, r *http.Request) {
	res, err := s.relay.Odds(r.Context())
	if err != nil {
		s.handleRelayError(w, err)
		return
	}
	writeRelay(w, res)
}

// Ratings handles GET /api/ratings.
func (s *Server) Ratings(w http.ResponseWriter, r *http.Request) {
	res, err := s.relay.Ratings(r.Context(), r.URL.Query().Get("season"))
	if err != nil {
		s.handleRelayError(w, err)
		return
	}
	writeRelay(w, res)
}

// Games handles GET /api/games.
func (s *Server) Games(w http.ResponseWriter, r *http.Request) {
	res, err := s.relay.Games(r.Context(), r.URL.Query().Get("season"))
	if err != nil {
		s.handleRelayError(w, err)
		return
	}
	writeRelay(w, res)
}

// Teams handles GET /api/teams.
func (s *Server) Teams(w http.ResponseWriter, r *http.Request) {
	res, err := s.relay.Teams(r.Context())
	if err != nil {
		s.handleRelayError(w, err)
		return
	}
	writeRelay(w, res)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// handleRelayError maps gateway failures onto the error taxonomy: missing
// credentials and transport failures both answer 500 with a description;
// neither is fatal to the process.
func (s *Server) handleRelayError(w http.ResponseWriter, err error) {
	var cme *domain.CredentialMissingError
	if errors.As(err, &cme) {
		s.logger.Warn("credential not configured", zap.String("key", cme.Key))
		writeError(w, http.StatusInternalServerError, cme.Error())
		return
	}

	s.logger.Error("relay error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, err.Error())
}

// writeRelay forwards an upstream result verbatim, status code included.
func writeRelay(w http.ResponseWriter, res domain.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(res.Body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
