// Package store is the gorm-backed record store for listings.
//
// Every write goes through mapping.Normalize so the persisted columns match the
// SQL export exactly. Deletes are soft: ativo is cleared and updated_at bumped.
// Write failures are returned as *reconcile.StoreError so the engine can record
// them per listing and keep going.
package store
