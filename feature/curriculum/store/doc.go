// Package store persists curriculum entities with GORM.
//
// NewGormStores returns one reconcile.EntityStore per entity kind (domain,
// competency, sub-competency, resource, evaluation). Create assigns a UUID and
// inserts the row; Update writes name plus every non-nil optional field and
// reloads the row. Errors are GORM's own and are not wrapped, so callers see
// exactly what the database reported.
//
// Repository loads live hierarchies (LoadDomain) and owns the schema (Migrate).
package store
