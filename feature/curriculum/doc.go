// Package curriculum exposes export and import of curriculum hierarchies.
//
// A hierarchy is a domain with competencies, sub-competencies, and the
// resources and evaluations attached to each sub-competency. Exports render
// the live hierarchy as a JSON tree document; imports merge such a document
// back, updating nodes whose id is known and creating the others. Nothing is
// ever deleted by an import.
//
// # Endpoints
//
//   - GET  /curriculum/domains
//   - GET  /curriculum/domains/:id/export
//   - POST /curriculum/domains/:id/import
//   - POST /curriculum/domains/:id/import/object?key=...
//   - POST /curriculum/domains/:id/publish
//   - GET  /curriculum/domains/:id/publish
//   - GET  /curriculum/exports
//   - GET  /curriculum/import/status
//
// Rendered exports are cached per domain for Config.ExportCacheSeconds and
// dropped after every import into that domain.
package curriculum
