package endpoints

import (
	"net/http"

	"github.com/transitohq/transito-in-go/pkg/metrics"
	"github.com/transitohq/transito-in-go/pkg/server"
	"github.com/transitohq/transito-in-go/pkg/server/store"
)

// HealthResponse reports the database connectivity probe. Unlike the consulta
// path, this endpoint surfaces the raw error detail to aid diagnosis.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// RegisterHealthEndpoint registers the health check endpoint
func RegisterHealthEndpoint(s *server.Server) {
	healthStore := s.HealthStore
	m := s.Metrics

	// GET /api/health - Database connectivity probe (no auth required)
	s.Router.HandleFunc("/api/health", handleHealth(healthStore, m)).Methods("GET")
}

func handleHealth(healthStore store.HealthStore, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			m.ObserveHealthCheck("unhealthy")
			respondWithJSON(w, http.StatusOK, HealthResponse{
				Status: "unhealthy",
				Error:  err.Error(),
			})
			return
		}

		m.ObserveHealthCheck("healthy")
		respondWithJSON(w, http.StatusOK, HealthResponse{
			Status:   "healthy",
			Database: "connected",
		})
	}
}
