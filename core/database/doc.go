// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL (pgx) or
// SQLite connections from the application's configuration.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies connection pool
// settings and verifies the connection with a bounded ping. Config.TLS toggles
// encrypted transport (tls=true for MySQL, sslmode=require for PostgreSQL).
//
// # Schema Inspection
//
// GetTableColumns lists the actual columns of a table so the integrity feature
// can compare them against the listings model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "imoveis")
package database
