package audit

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"gorm.io/gorm"
)

// Store persists audit events into the auditoria_consultas table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an existing connection pool.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Save persists one audit event. The write shares the service pool but never
// runs on the request path; the logger calls it after the response is shaped.
func (s *Store) Save(event Event) error {
	if s == nil || s.db == nil {
		return errors.New("audit store has no database")
	}

	hostname, _ := os.Hostname()

	sdataJSON, err := json.Marshal(event.StructuredData())
	if err != nil {
		return err
	}

	tx := s.db.Exec(`
		INSERT INTO auditoria_consultas (facility, severity, timestamp, hostname, procid, msgid, sdata, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		event.Facility(),
		int(event.Severity()),
		time.Now().UTC(),
		hostname,
		os.Getpid(),
		event.MessageID(),
		sdataJSON,
		event.Message(),
	)
	return tx.Error
}
