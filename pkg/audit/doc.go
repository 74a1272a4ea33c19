// Package audit provides the access trail for the consulta service.
//
// Every lookup against the registry is recorded: the (placa, cedula) pair,
// the caller's address and the outcome, including rejected and errored
// lookups. Events are written as RFC5424 syslog lines on stdout and,
// when a store is attached, mirrored into the auditoria_consultas table.
//
// The logger is an explicit dependency of the server; a nil logger drops
// everything, so the trail can be switched off without touching handlers.
package audit
