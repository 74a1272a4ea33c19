package endpoints

import (
	"github.com/transitohq/transito-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoint(srv)
	RegisterConsultaEndpoints(srv)
	RegisterHealthEndpoint(srv)
	RegisterMetricsEndpoint(srv)
}
