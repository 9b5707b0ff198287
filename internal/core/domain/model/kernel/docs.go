// Package kernel provides the shared domain primitives of the procurement model.
//
// The package includes:
//   - ID: an opaque, non-empty string identifier used by every aggregate
//   - Snapshot: an (ID, display name) pair copied into orders so historical
//     records stay stable when the referenced client, user or product changes
//
// Both types are immutable values and safe for concurrent use.
package kernel
