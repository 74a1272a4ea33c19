package audit

import "fmt"

// Consulta outcomes as recorded in the trail.
const (
	OutcomeEncontrado   = "encontrado"
	OutcomeNoEncontrado = "no_encontrado"
	OutcomeRechazado    = "rechazado"
	OutcomeError        = "error"
)

// ConsultaEvent records one lookup against the vehicle registry: which pair
// was asked for, from where, and how it went. Rejected and errored lookups
// are part of the trail too.
type ConsultaEvent struct {
	Placa    string
	Cedula   string
	Outcome  string
	ClientIP string
}

func (e ConsultaEvent) MessageID() string { return "consulta" }

func (e ConsultaEvent) Severity() Severity {
	switch e.Outcome {
	case OutcomeError:
		return SeverityWarning
	case OutcomeRechazado:
		return SeverityNotice
	default:
		return SeverityInfo
	}
}

func (e ConsultaEvent) Facility() int { return FacilityAuth }

func (e ConsultaEvent) Message() string {
	return fmt.Sprintf("consulta placa=%s cedula=%s outcome=%s", e.Placa, e.Cedula, e.Outcome)
}

func (e ConsultaEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDConsulta: {
			"placa":   e.Placa,
			"cedula":  e.Cedula,
			"outcome": e.Outcome,
		},
	}
	if e.ClientIP != "" {
		sd[SDIDClient] = map[string]string{"ip": e.ClientIP}
	}
	return sd
}
