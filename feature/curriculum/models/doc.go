// Package models defines the curriculum entities and their document form.
//
//   - Live hierarchy: GORM models (Domain, Competency, SubCompetency, Resource,
//     Evaluation). Every persisted entity has an id; some fields such as child
//     counts are derived on load and never exported.
//   - Document: the identifier-optional tree used for import and export.
//   - Fields: the explicit field sets handed to the entity stores on create/update.
package models
