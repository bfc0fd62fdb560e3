// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Checks the X-API-Key header (or api_key query parameter) against the
//     configured key. An empty key disables the check.
//   - RayID: Assigns every request a Request ID (RayID), stored in the "ray_id"
//     local and echoed in the X-Ray-ID response header. logger.WithRayID reads it.
//
// These middleware components are designed to be registered globally or per-route group
// in the main application setup.
package middleware
