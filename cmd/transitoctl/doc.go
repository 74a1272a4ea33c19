// Package transitoctl provides the CLI for the vehicle registry query API.
//
// The service exposes a public read-only lookup of Colombian vehicle and
// owner records: given a plate and the current owner's cédula it returns the
// registration, compliance documents, fines and ownership history assembled
// from the transito_db MySQL schema.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage interfaces and GORM implementations
//   - pkg/validation: plate and cédula format validators
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: configuration management
//   - pkg/metrics: Prometheus instrumentation
//   - pkg/audit: RFC5424 access trail
//
// # Quick Start
//
//	# Create the schema
//	transitoctl db migrate
//
//	# Start the server
//	transitoctl server
//
//	# Block until the server answers
//	transitoctl wait
//
// # Environment Variables
//
//   - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_CHARSET: MySQL
//     connection settings (defaults suit a co-located container)
//   - BIND_ADDRESS, PORT: HTTP listen address (default 0.0.0.0:8000)
//   - TRANSITO_LOG_LEVEL: log level (debug, info, warn, error)
//   - TRANSITO_AUDIT_ENABLED, TRANSITO_AUDIT_PERSIST: access trail switches
//   - TRANSITO_CONFIG_PATH: directory holding an optional transito.yml
package main
