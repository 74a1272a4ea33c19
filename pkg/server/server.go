package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/transitohq/transito-in-go/pkg/audit"
	"github.com/transitohq/transito-in-go/pkg/metrics"
	"github.com/transitohq/transito-in-go/pkg/server/store"
	gormstore "github.com/transitohq/transito-in-go/pkg/server/store/gorm"
)

type Server struct {
	Router        *mux.Router
	DB            *gorm.DB
	ConsultaStore store.ConsultaStore
	HealthStore   store.HealthStore
	Metrics       *metrics.Metrics
	Audit         *audit.Logger
	srv           *http.Server
}

// NewServer wires the router, stores and HTTP server. db may be nil when the
// startup connection attempts were exhausted; the stores then fail fast with
// store.ErrUnavailable instead of blocking.
func NewServer(
	db *gorm.DB,
	m *metrics.Metrics,
	host string,
	port string,
) *Server {
	// Path variables must arrive decoded: callers percent-encode spaces in
	// plates ("ABC%20123") and the validators expect the raw characters.
	router := mux.NewRouter()

	// The API is consumed cross-origin by a public frontend: any origin is
	// allowed, and because of that wildcard, credentials must not be.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:        router,
		DB:            db,
		ConsultaStore: gormstore.NewConsultaStore(db),
		HealthStore:   gormstore.NewHealthStore(db),
		Metrics:       m,
		srv:           srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
