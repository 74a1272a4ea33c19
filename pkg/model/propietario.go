package model

// Propietario is the current registered owner of a vehicle.
type Propietario struct {
	IDPropietario int64   `gorm:"column:id_propietario;primaryKey"`
	Cedula        string  `gorm:"column:cedula;uniqueIndex;size:10;not null"`
	Nombre        string  `gorm:"column:nombre;size:128;not null"`
	Telefono      *string `gorm:"column:telefono;size:32"`
	Email         *string `gorm:"column:email;size:128"`
	Direccion     *string `gorm:"column:direccion;size:255"`
}

// TableName maps to the legacy singular table name.
func (Propietario) TableName() string {
	return "propietario"
}
