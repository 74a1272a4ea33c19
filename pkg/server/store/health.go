package store

// HealthStore provides the database connectivity probe.
type HealthStore interface {
	// CheckConnectivity issues a trivial liveness statement against the
	// pooled connection. A nil return means the store answered.
	CheckConnectivity() error
}
