// Package integrity provides health checks for the infrastructure listing-sync
// depends on.
//
// # Checks Provided
//
//   - Schema: Validates that the imoveis table matches the listing model (columns, type families).
//   - Storage: Verifies the export bucket exists and counts uploaded SQL exports.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
