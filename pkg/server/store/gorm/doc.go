// Package gorm implements the store interfaces over the MySQL transito_db
// schema using GORM.
package gorm
