// Package config provides configuration management for the consulta service.
//
// Values are resolved in order: built-in defaults, then the optional
// transito.yml file, then environment variables. Environment always wins.
//
// # Key Configuration Options
//
//   - BIND_ADDRESS, PORT: HTTP server listen address
//   - TRANSITO_LOG_LEVEL: Logging verbosity
//   - TRANSITO_AUDIT_ENABLED, TRANSITO_AUDIT_PERSIST: Access trail
//   - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME: MySQL connection
//   - TRANSITO_CONFIG_PATH: Directory holding transito.yml
package config
