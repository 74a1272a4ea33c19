// Package db provides the MySQL connection for the consulta service.
//
// This package handles MySQL database connections using GORM. The pool is
// established once at startup (with bounded retry) and handed to the server
// as an explicit dependency; nothing here is process-global.
//
// # Connection
//
//	gormDB, err := db.ConnectWithRetry(cfg, 10, 3*time.Second)
//	if err != nil {
//	    // the server can still start; stores fail fast without a pool
//	}
//
// # Environment Variables
//
// Connection parameters come from pkg/config, which reads DB_HOST, DB_PORT,
// DB_USER, DB_PASSWORD and DB_NAME with defaults suitable for a co-located
// containerized MySQL.
package db
