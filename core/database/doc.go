// Package database handles database connections, migrations and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured dialect, applies pool settings and pings the
// server. SQLite connections are limited to one pooled connection; this is what
// serializes concurrent vote transactions on a database without row locks.
//
// # Schema Inspection
//
// GetTableColumns returns the live column set of a table. The integrity feature
// compares it with the GORM models of the ranking feature.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "pokemon")
package database
