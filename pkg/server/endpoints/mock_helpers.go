package endpoints

import (
	"database/sql"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/transitohq/transito-in-go/pkg/server"
)

// NewMockTestServer creates a server instance with a mocked database for unit
// testing. Metrics are left nil so repeated test runs don't re-register
// collectors on the default Prometheus registry.
func NewMockTestServer() (*server.Server, *MockDB, error) {
	mockDB, err := NewMockDB()
	if err != nil {
		return nil, nil, err
	}

	s := server.NewServer(mockDB.GormDB, nil, "127.0.0.1", "0")
	return s, mockDB, nil
}

// MockDB wraps sqlmock for easier test setup
type MockDB struct {
	DB     *sql.DB
	Mock   sqlmock.Sqlmock
	GormDB *gorm.DB
}

// NewMockDB creates a new mock database connection
func NewMockDB() (*MockDB, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(
		mysql.New(mysql.Config{
			Conn:                      db,
			SkipInitializeWithVersion: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &MockDB{
		DB:     db,
		Mock:   mock,
		GormDB: gormDB,
	}, nil
}

// Close closes the mock database
func (m *MockDB) Close() error {
	return m.DB.Close()
}

var consultaColumns = []string{
	"id_vehiculo", "placa", "marca", "modelo", "tipo", "cilindraje",
	"estado_soat", "vencimiento_soat",
	"estado_tecnomecanica", "vencimiento_tecnomecanica",
	"cedula", "nombre", "telefono", "email", "direccion",
}

// ConsultaRowFixture is a convenient joined-row fixture for the happy path.
type ConsultaRowFixture struct {
	IDVehiculo               int64
	Placa                    string
	Marca                    string
	Modelo                   int
	Tipo                     string
	Cilindraje               int
	EstadoSoat               string
	VencimientoSoat          time.Time
	EstadoTecnomecanica      string
	VencimientoTecnomecanica time.Time
	Cedula                   string
	Nombre                   string
}

// ExpectConsultaRow sets up the vehicle/owner join to return one row
func (m *MockDB) ExpectConsultaRow(placa, cedula string, f ConsultaRowFixture) {
	rows := sqlmock.NewRows(consultaColumns).AddRow(
		f.IDVehiculo, f.Placa, f.Marca, f.Modelo, f.Tipo, f.Cilindraje,
		f.EstadoSoat, f.VencimientoSoat,
		f.EstadoTecnomecanica, f.VencimientoTecnomecanica,
		f.Cedula, f.Nombre, nil, nil, nil,
	)
	m.Mock.ExpectQuery(`FROM vehiculo v`).
		WithArgs(placa, cedula).
		WillReturnRows(rows)
}

// ExpectConsultaNotFound sets up the vehicle/owner join to return no rows
func (m *MockDB) ExpectConsultaNotFound(placa, cedula string) {
	m.Mock.ExpectQuery(`FROM vehiculo v`).
		WithArgs(placa, cedula).
		WillReturnRows(sqlmock.NewRows(consultaColumns))
}

// ExpectConsultaError sets up the vehicle/owner join to fail
func (m *MockDB) ExpectConsultaError(placa, cedula string, err error) {
	m.Mock.ExpectQuery(`FROM vehiculo v`).
		WithArgs(placa, cedula).
		WillReturnError(err)
}

// ExpectMultasQuery sets up the fines lookup for a vehicle id
func (m *MockDB) ExpectMultasQuery(idVehiculo int64, rows *sqlmock.Rows) {
	m.Mock.ExpectQuery("SELECT .* FROM `multas`").
		WithArgs(idVehiculo).
		WillReturnRows(rows)
}

// ExpectHistorialQuery sets up the ownership history lookup for a vehicle id
func (m *MockDB) ExpectHistorialQuery(idVehiculo int64, rows *sqlmock.Rows) {
	m.Mock.ExpectQuery("SELECT .* FROM `historial_propietarios`").
		WithArgs(idVehiculo).
		WillReturnRows(rows)
}

// MultasRows builds an empty multas result to add rows onto
func MultasRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_multa", "id_vehiculo", "fecha", "tipo_infraccion", "monto", "estado",
	})
}

// HistorialRows builds an empty historial result to add rows onto
func HistorialRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_historial", "id_vehiculo", "cedula_antiguo_propietario", "fecha_transferencia",
	})
}

// ExpectHealthCheck sets up the liveness statement
func (m *MockDB) ExpectHealthCheck() {
	m.Mock.ExpectExec("SELECT 1").
		WillReturnResult(sqlmock.NewResult(0, 0))
}

// ExpectHealthCheckError sets up the liveness statement to fail
func (m *MockDB) ExpectHealthCheckError(err error) {
	m.Mock.ExpectExec("SELECT 1").
		WillReturnError(err)
}

// VerifyExpectations checks that all expectations were met
func (m *MockDB) VerifyExpectations() error {
	return m.Mock.ExpectationsWereMet()
}
