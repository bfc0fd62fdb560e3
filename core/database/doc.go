// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL connections (production) or
// SQLite databases (local runs and tests) based on the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
