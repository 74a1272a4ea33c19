package model

import "time"

// Vehiculo is a registered vehicle. The SOAT and Tecnomecánica columns live
// on the vehicle row itself rather than in a documents table; the consulta
// store turns them into the two fixed document entries of the response.
type Vehiculo struct {
	IDVehiculo               int64      `gorm:"column:id_vehiculo;primaryKey"`
	Placa                    string     `gorm:"column:placa;uniqueIndex;size:10;not null"`
	Marca                    *string    `gorm:"column:marca;size:64"`
	Modelo                   *int       `gorm:"column:modelo"`
	Tipo                     *string    `gorm:"column:tipo;size:32"`
	Cilindraje               *int       `gorm:"column:cilindraje"`
	EstadoSoat               string     `gorm:"column:estado_soat;size:32"`
	VencimientoSoat          *time.Time `gorm:"column:vencimiento_soat"`
	EstadoTecnomecanica      string     `gorm:"column:estado_tecnomecanica;size:32"`
	VencimientoTecnomecanica *time.Time `gorm:"column:vencimiento_tecnomecanica"`
	IDPropietario            int64      `gorm:"column:id_propietario;index;not null"`
}

// TableName maps to the legacy singular table name.
func (Vehiculo) TableName() string {
	return "vehiculo"
}
