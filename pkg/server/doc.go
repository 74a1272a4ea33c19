// Package server provides the HTTP server for the consulta API.
//
// This package implements the HTTP server that fronts the vehicle query
// service. It uses gorilla/mux for routing, gorilla/handlers for access logs
// and the wide-open CORS policy, and carries the stores as explicit
// dependencies rather than package globals.
//
// # Server Setup
//
//	srv := server.NewServer(gormDB, metrics.New(), host, port)
//	endpoints.RegisterAll(srv)
//	log.Fatal(srv.Start())
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - / - welcome/status payload
//   - /api/consulta/{placa}/{cedula} - vehicle record query
//   - /api/health - database connectivity probe
//   - /metrics - Prometheus metrics
package server
