package model

import "time"

// Multa is a traffic fine issued against a vehicle.
type Multa struct {
	IDMulta        int64     `gorm:"column:id_multa;primaryKey"`
	IDVehiculo     int64     `gorm:"column:id_vehiculo;index;not null"`
	Fecha          time.Time `gorm:"column:fecha;not null"`
	TipoInfraccion string    `gorm:"column:tipo_infraccion;size:128;not null"`
	Monto          float64   `gorm:"column:monto;not null"`
	Estado         string    `gorm:"column:estado;size:32;not null"`
}

// TableName maps to the legacy table name.
func (Multa) TableName() string {
	return "multas"
}
