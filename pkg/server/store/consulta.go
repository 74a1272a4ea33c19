package store

import "errors"

// ErrNoMatch is returned when no vehicle/owner pair matches a consulta. The
// pair must match together: knowing only the plate is not enough to read the
// record.
var ErrNoMatch = errors.New("no vehicle matches the given placa and cedula")

// ErrUnavailable is returned when the connection pool was never established.
// Callers fail fast instead of retrying.
var ErrUnavailable = errors.New("database not available")

// Propietario is the current owner as presented to the caller.
type Propietario struct {
	Cedula    string  `json:"cedula"`
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
}

// Documento is one of the two compliance documents tracked per vehicle
// (SOAT, Tecnomecánica). Fechas are rendered as ISO dates.
type Documento struct {
	Tipo        string `json:"tipo"`
	Estado      string `json:"estado"`
	Vencimiento string `json:"vencimiento"`
	Valor       string `json:"valor"`
}

// Multa is a traffic fine as presented to the caller, newest first.
type Multa struct {
	IDMulta        int64   `json:"id_multa"`
	Fecha          string  `json:"fecha"`
	TipoInfraccion string  `json:"tipo_infraccion"`
	Monto          float64 `json:"monto"`
	Estado         string  `json:"estado"`
}

// HistorialPropietario is one past ownership record, newest transfer first.
type HistorialPropietario struct {
	Cedula string `json:"cedula"`
	Nombre string `json:"nombre"`
	Desde  string `json:"desde"`
	Hasta  string `json:"hasta"`
}

// Vehiculo is the fully assembled consulta result. It is built fresh per
// request and never cached; a partially populated Vehiculo is never returned.
type Vehiculo struct {
	Placa       string                 `json:"placa"`
	Marca       *string                `json:"marca"`
	Modelo      *int                   `json:"modelo"`
	Tipo        *string                `json:"tipo"`
	Cilindraje  *int                   `json:"cilindraje"`
	Propietario Propietario            `json:"propietario"`
	Documentos  []Documento            `json:"documentos"`
	Multas      []Multa                `json:"multas"`
	Historial   []HistorialPropietario `json:"historial"`
}

// ConsultaStore abstracts the vehicle record assembly.
type ConsultaStore interface {
	// FetchVehiculo returns the assembled record for a validated
	// (placa, cedula) pair.
	// Returns ErrNoMatch when no joined row exists for the pair.
	// Returns ErrUnavailable when the pool was never established.
	// Any other error is a store failure; callers decide how much of it
	// to reveal.
	FetchVehiculo(placa, cedula string) (*Vehiculo, error)
}
