package model

import "time"

// HistorialPropietario records a past ownership transfer of a vehicle. Only
// the previous owner's cédula is kept; the registry never stored their name
// or the end of their tenure.
type HistorialPropietario struct {
	IDHistorial              int64     `gorm:"column:id_historial;primaryKey"`
	IDVehiculo               int64     `gorm:"column:id_vehiculo;index;not null"`
	CedulaAntiguoPropietario string    `gorm:"column:cedula_antiguo_propietario;size:10;not null"`
	FechaTransferencia       time.Time `gorm:"column:fecha_transferencia;not null"`
}

// TableName maps to the legacy table name.
func (HistorialPropietario) TableName() string {
	return "historial_propietarios"
}
