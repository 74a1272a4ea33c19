package gorm

import (
	"gorm.io/gorm"

	"github.com/transitohq/transito-in-go/pkg/server/store"
)

// Ensure HealthStore implements store.HealthStore
var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore provides the connectivity probe using GORM.
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore.
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// CheckConnectivity verifies database connectivity with a trivial statement.
func (s *HealthStore) CheckConnectivity() error {
	if s.db == nil {
		return store.ErrUnavailable
	}
	return s.db.Exec("SELECT 1").Error
}
