// Package acl is the anti-corruption layer between the quote service's
// domain and the external services it calls, currently the AI model
// API and the feature flag service.
//
// Adapters in this package own three jobs:
//
//   - keep external DTOs unexported so they never leak into the domain
//   - translate transport failures and HTTP error bodies into domain
//     errors ([MapHTTPError], [MapExternalCode])
//   - validate external data before building domain objects
//
// A new adapter embeds [BaseAdapter] for request plumbing, decodes
// bodies with [DecodeResponse], and exposes only domain types. See
// [AIModelClient] for the shape.
//
// Error translation is total: every failure mode, including client
// level ones such as [clients.ErrCircuitOpen] and
// [clients.ErrMaxRetriesExceeded], comes back as a domain error, so
// callers never inspect HTTP status codes.
package acl
