package endpoints

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/transitohq/transito-in-go/pkg/audit"
	"github.com/transitohq/transito-in-go/pkg/metrics"
	"github.com/transitohq/transito-in-go/pkg/server"
	"github.com/transitohq/transito-in-go/pkg/server/store"
	"github.com/transitohq/transito-in-go/pkg/validation"
)

// Caller-facing messages, kept byte-for-byte from the original API so the
// existing frontend keeps working.
const (
	msgPlacaInvalida   = "Formato de placa inválido. Ejemplos válidos: ABC-123, ABC123, ABC-1234"
	msgCedulaInvalida  = "Formato de cédula inválido. Debe tener entre 6 y 10 dígitos"
	msgSinResultados   = "No se encontró información para la placa y cédula proporcionadas"
	msgConsultaExitosa = "Consulta exitosa"
	msgSinBaseDeDatos  = "Base de datos no disponible"
)

// ConsultaResponse is the uniform envelope for the consulta endpoint. Absence
// of data is not a transport error: it travels as success=false with a 200.
type ConsultaResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *store.Vehiculo `json:"data"`
}

// RegisterConsultaEndpoints registers the vehicle query endpoint
func RegisterConsultaEndpoints(s *server.Server) {
	consultas := s.ConsultaStore
	m := s.Metrics
	trail := s.Audit

	// GET /api/consulta/{placa}/{cedula} - Main vehicle query (no auth;
	// the placa+cedula pairing is the access-control substitute)
	s.Router.HandleFunc("/api/consulta/{placa}/{cedula}", handleConsulta(consultas, m, trail)).Methods("GET")
}

func handleConsulta(consultas store.ConsultaStore, m *metrics.Metrics, trail *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		placa := vars["placa"]
		cedula := vars["cedula"]

		record := func(outcome string) {
			trail.Log(audit.ConsultaEvent{
				Placa:    placa,
				Cedula:   cedula,
				Outcome:  outcome,
				ClientIP: clientIP(r),
			})
		}

		// Both validators run before any database access. The store receives
		// the parameters as sent: normalization happens only inside the plate
		// matcher, matching the behavior the data was loaded under.
		if !validation.ValidPlaca(placa) {
			m.ObserveConsulta(metrics.OutcomeInvalidInput)
			record(audit.OutcomeRechazado)
			respondWithError(w, http.StatusBadRequest, msgPlacaInvalida)
			return
		}
		if !validation.ValidCedula(cedula) {
			m.ObserveConsulta(metrics.OutcomeInvalidInput)
			record(audit.OutcomeRechazado)
			respondWithError(w, http.StatusBadRequest, msgCedulaInvalida)
			return
		}

		vehiculo, err := consultas.FetchVehiculo(placa, cedula)
		switch {
		case err == nil:
			m.ObserveConsulta(metrics.OutcomeFound)
			record(audit.OutcomeEncontrado)
			respondWithJSON(w, http.StatusOK, ConsultaResponse{
				Success: true,
				Message: msgConsultaExitosa,
				Data:    vehiculo,
			})
		case errors.Is(err, store.ErrNoMatch):
			m.ObserveConsulta(metrics.OutcomeNotFound)
			record(audit.OutcomeNoEncontrado)
			respondWithJSON(w, http.StatusOK, ConsultaResponse{
				Success: false,
				Message: msgSinResultados,
			})
		case errors.Is(err, store.ErrUnavailable):
			m.ObserveConsulta(metrics.OutcomeError)
			record(audit.OutcomeError)
			respondWithError(w, http.StatusInternalServerError, msgSinBaseDeDatos)
		default:
			// A store failure is presented to the caller as "no match"; the
			// root cause stays in the server logs.
			logrus.WithError(err).WithField("placa", placa).Error("consulta failed")
			m.ObserveConsulta(metrics.OutcomeError)
			record(audit.OutcomeError)
			respondWithJSON(w, http.StatusOK, ConsultaResponse{
				Success: false,
				Message: msgSinResultados,
			})
		}
	}
}

// clientIP extracts the caller address for the access trail. The service sits
// behind a reverse proxy in the demo stack, so X-Forwarded-For wins when set.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
