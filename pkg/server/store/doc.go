// Package store defines the storage interfaces and response-shaped types for
// the consulta service. Implementations live in the gorm subpackage; handlers
// depend only on the interfaces here so unit tests can swap the store out.
package store
