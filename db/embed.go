// Package db carries the transito_db schema migrations. They are embedded
// into the binary when built with the embed_migrations tag; development
// builds read them from db/migrations on disk.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
