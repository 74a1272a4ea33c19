package endpoints

import (
	"net/http"
	"os"

	"github.com/transitohq/transito-in-go/pkg/server"
)

// StatusResponse is the welcome payload served at the API root.
type StatusResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Status  string `json:"status"`
}

// RegisterStatusEndpoint registers the welcome/status endpoint
func RegisterStatusEndpoint(s *server.Server) {
	// GET / - Welcome payload (no auth, no database access)
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("TRANSITO_VERSION_DISPLAY")
		if version == "" {
			version = "1.0.0"
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Message: "API Consultas Vehiculares",
			Version: version,
			Docs:    "/docs",
			Status:  "running",
		})
	}
}
