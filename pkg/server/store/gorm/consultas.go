package gorm

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/transitohq/transito-in-go/pkg/model"
	"github.com/transitohq/transito-in-go/pkg/server/store"
)

// Ensure ConsultaStore implements store.ConsultaStore
var _ store.ConsultaStore = (*ConsultaStore)(nil)

const dateLayout = "2006-01-02"

// ConsultaStore implements store.ConsultaStore using GORM. A nil db means the
// pool was never established at startup; every call then fails fast with
// store.ErrUnavailable.
type ConsultaStore struct {
	db *gorm.DB
}

// NewConsultaStore creates a new ConsultaStore.
func NewConsultaStore(db *gorm.DB) *ConsultaStore {
	return &ConsultaStore{db: db}
}

// consultaRow is the single joined row fetched for a matching pair: vehicle
// attributes, both document statuses/expiries, and owner attributes.
type consultaRow struct {
	IDVehiculo               int64
	Placa                    string
	Marca                    *string
	Modelo                   *int
	Tipo                     *string
	Cilindraje               *int
	EstadoSoat               string
	VencimientoSoat          *time.Time
	EstadoTecnomecanica      string
	VencimientoTecnomecanica *time.Time
	Cedula                   string
	Nombre                   string
	Telefono                 *string
	Email                    *string
	Direccion                *string
}

// FetchVehiculo assembles the full record for a validated (placa, cedula)
// pair. The joined vehicle/owner row gates everything: if it does not exist,
// no further queries run and ErrNoMatch is returned.
func (s *ConsultaStore) FetchVehiculo(placa, cedula string) (*store.Vehiculo, error) {
	if s.db == nil {
		return nil, store.ErrUnavailable
	}

	var row consultaRow
	tx := s.db.Raw(`
		SELECT
			v.id_vehiculo, v.placa, v.marca, v.modelo, v.tipo, v.cilindraje,
			v.estado_soat, v.vencimiento_soat,
			v.estado_tecnomecanica, v.vencimiento_tecnomecanica,
			p.cedula, p.nombre, p.telefono, p.email, p.direccion
		FROM vehiculo v
		JOIN propietario p ON p.id_propietario = v.id_propietario
		WHERE v.placa = ? AND p.cedula = ?`,
		placa, cedula,
	).Scan(&row)
	if tx.Error != nil {
		return nil, fmt.Errorf("vehicle lookup failed: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNoMatch
	}

	var multas []model.Multa
	err := s.db.
		Where("id_vehiculo = ?", row.IDVehiculo).
		Order("fecha DESC").
		Find(&multas).Error
	if err != nil {
		return nil, fmt.Errorf("multas lookup failed: %w", err)
	}

	var historial []model.HistorialPropietario
	err = s.db.
		Where("id_vehiculo = ?", row.IDVehiculo).
		Order("fecha_transferencia DESC").
		Find(&historial).Error
	if err != nil {
		return nil, fmt.Errorf("historial lookup failed: %w", err)
	}

	return assembleVehiculo(row, multas, historial), nil
}

func assembleVehiculo(row consultaRow, multas []model.Multa, historial []model.HistorialPropietario) *store.Vehiculo {
	vehiculo := &store.Vehiculo{
		Placa:      row.Placa,
		Marca:      row.Marca,
		Modelo:     row.Modelo,
		Tipo:       row.Tipo,
		Cilindraje: row.Cilindraje,
		Propietario: store.Propietario{
			Cedula:    row.Cedula,
			Nombre:    row.Nombre,
			Telefono:  row.Telefono,
			Email:     row.Email,
			Direccion: row.Direccion,
		},
		Documentos: fixedDocumentos(row),
		Multas:     make([]store.Multa, 0, len(multas)),
		Historial:  legacyHistorial(historial),
	}

	for _, m := range multas {
		vehiculo.Multas = append(vehiculo.Multas, store.Multa{
			IDMulta:        m.IDMulta,
			Fecha:          m.Fecha.Format(dateLayout),
			TipoInfraccion: m.TipoInfraccion,
			Monto:          m.Monto,
			Estado:         m.Estado,
		})
	}

	return vehiculo
}

// fixedDocumentos synthesizes the two document entries from the statuses and
// expiries stored on the vehicle row. The valor strings are fixed display
// prices, not derived from stored data — known data-quality debt, kept for
// compatibility with the existing frontend.
func fixedDocumentos(row consultaRow) []store.Documento {
	return []store.Documento{
		{
			Tipo:        "SOAT",
			Estado:      row.EstadoSoat,
			Vencimiento: formatFecha(row.VencimientoSoat),
			Valor:       "$150.000",
		},
		{
			Tipo:        "Tecnomecánica",
			Estado:      row.EstadoTecnomecanica,
			Vencimiento: formatFecha(row.VencimientoTecnomecanica),
			Valor:       "$180.000",
		},
	}
}

// legacyHistorial maps ownership transfers to the response shape. The
// registry never stored past owners' names or tenure ends, so the nombre is
// synthesized from the last three cédula characters and hasta is always the
// literal "Actual" — known data-quality debt, kept for compatibility.
func legacyHistorial(historial []model.HistorialPropietario) []store.HistorialPropietario {
	records := make([]store.HistorialPropietario, 0, len(historial))
	for _, h := range historial {
		cedula := h.CedulaAntiguoPropietario
		suffix := cedula
		if len(cedula) > 3 {
			suffix = cedula[len(cedula)-3:]
		}
		records = append(records, store.HistorialPropietario{
			Cedula: cedula,
			Nombre: "Propietario " + suffix,
			Desde:  h.FechaTransferencia.Format("2006"),
			Hasta:  "Actual",
		})
	}
	return records
}

func formatFecha(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
