// Package model contains the GORM models for the transito_db schema.
//
// The schema predates this service and keeps its original Spanish table and
// column names (propietario, vehiculo, multas, historial_propietarios); the
// models here map onto it without renaming anything.
package model
