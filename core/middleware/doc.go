// Package middleware groups the Fiber middleware shared by every feature.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header does not match the
//     configured key. An empty key turns the check off.
//   - rayid: tags every request with an X-Ray-ID, reusing the caller's
//     value when one is sent, and stores it in the fiber locals so the
//     logger can attach it to request logs.
//
// Public routes such as /health and /swagger are registered before auth.
package middleware
