// Package codec converts between live curriculum hierarchies and portable documents.
//
// Export is a pure walk of a loaded Domain; ExportJSON renders it with two-space
// indentation. Parse is the import pre-processing step: it rejects text that is
// not JSON (ErrMalformedInput) and JSON that lacks the domain/competencies shape
// (ErrInvalidShape), and leaves per-node checks to the reconcilers.
//
// Round trip: Parse(ExportJSON(d)) equals Export(d).
package codec
